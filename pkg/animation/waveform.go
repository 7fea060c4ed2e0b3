package animation

import (
	"math"
	"math/rand"
)

// Tick timing. The figure is driven at a fixed 25 ms step and every periodic
// behaviour is expressed as a multiple of a 5 second period.
const (
	MillisPerFrame  = 25
	FramesPerSecond = 1000 / MillisPerFrame
	Period          = 5 * FramesPerSecond
)

// Sine samples a cosine wave at the given frame:
//
//	amplitude * cos((frame/Period*2π + phase) * factor)
//
// Note the phase is added before scaling by factor.
func Sine(frame int, amplitude, factor, phase float64) float64 {
	t := float64(frame) / Period * 2 * math.Pi
	return amplitude * math.Cos((t+phase)*factor)
}

// Sawtooth samples a triangle wave in [-amplitude, 0] whose period is
// factor*Period frames. The wave rises from -amplitude to 0 over the first
// half of the period and falls back over the second.
func Sawtooth(frame int, amplitude, factor float64) float64 {
	p := factor * Period
	v := math.Mod(float64(frame), p) / p
	if v > 0.5 {
		v = 1 - v
	}
	return (v - 0.5) * amplitude * 2
}

// RandomWalk is a bounded random walk that jumps once every Interval frames.
type RandomWalk struct {
	Value     float64
	Min       float64
	Max       float64
	Amplitude float64
	Interval  int
}

// NewRandomWalk creates a walk starting at start. The update interval is
// factor*Period frames, and at least one frame.
func NewRandomWalk(start, lo, hi, amplitude, factor float64) RandomWalk {
	interval := int(factor * Period)
	if interval < 1 {
		interval = 1
	}
	return RandomWalk{
		Value:     start,
		Min:       lo,
		Max:       hi,
		Amplitude: amplitude,
		Interval:  interval,
	}
}

// Step advances the walk. On frames that are a multiple of Interval the
// value moves by a uniform offset in [-Amplitude/2, Amplitude/2] and is
// clamped to [Min, Max]; on every other frame the stored value is returned
// unchanged.
func (w *RandomWalk) Step(frame int, rng *rand.Rand) float64 {
	if w.Interval <= 0 || frame%w.Interval != 0 {
		return w.Value
	}
	v := w.Value + (rng.Float64()-0.5)*w.Amplitude
	if v > w.Max {
		v = w.Max
	} else if v < w.Min {
		v = w.Min
	}
	w.Value = v
	return v
}
