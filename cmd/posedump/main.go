// Command posedump runs one animation mode headless and prints, per joint
// and axis, the range of angles it swept as YAML. Every value is also
// checked against the joint's limits; a violation makes the exit status 1.
//
// Usage:
//
//	go run ./cmd/posedump --mode walk --ticks 400 --seed 7
//	go run ./cmd/posedump --mode dance --joint l_upperleg,r_upperleg
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/decker502/nanobot/pkg/animation"
	"github.com/decker502/nanobot/pkg/joint"
	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/rig"
)

var (
	modeFlag    = flag.String("mode", "walk", "Animation mode to run ("+modeList()+")")
	jointFlag   = flag.String("joint", "", "Comma separated joint names to report (default all)")
	ticksFlag   = flag.Int("ticks", 400, "Number of ticks to run")
	seedFlag    = flag.Int64("seed", 1, "Random seed")
	verboseFlag = flag.Bool("verbose", false, "Log mode changes to stderr")
)

// Range is the swept interval of one axis.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// JointReport covers one joint. Axes that never moved are omitted.
type JointReport struct {
	Base   [3]float64 `yaml:"base,flow"`
	Target [3]float64 `yaml:"target,flow"`
	X      *Range     `yaml:"x,omitempty"`
	Y      *Range     `yaml:"y,omitempty"`
	Z      *Range     `yaml:"z,omitempty"`
}

// PartReport is where a skeleton part ended up after the last tick.
type PartReport struct {
	Parent string     `yaml:"parent,omitempty"`
	Origin [3]float64 `yaml:"origin,flow"`
}

// Report is the document printed to stdout.
type Report struct {
	Mode       string                 `yaml:"mode"`
	Ticks      int                    `yaml:"ticks"`
	Seed       int64                  `yaml:"seed"`
	FinalMode  string                 `yaml:"finalMode"`
	Joints     map[string]JointReport `yaml:"joints"`
	Parts      map[string]PartReport  `yaml:"parts"`
	Violations []string               `yaml:"violations,omitempty"`
}

func main() {
	flag.Parse()

	log := zerolog.Nop()
	if *verboseFlag {
		log = logging.New(os.Stderr, "debug")
	}

	mode, ok := animation.ParseMode(*modeFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q, want one of %s\n", *modeFlag, modeList())
		os.Exit(2)
	}
	only, err := parseJoints(*jointFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	report, err := dump(mode, *ticksFlag, *seedFlag, only, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if err := write(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if len(report.Violations) > 0 {
		os.Exit(1)
	}
}

func modeList() string {
	modes := animation.Modes()
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

// parseJoints turns a comma separated list of joint names into labels. An
// empty list selects every joint.
func parseJoints(list string) ([]joint.Label, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []joint.Label
	for _, name := range strings.Split(list, ",") {
		l, ok := joint.ParseLabel(name)
		if !ok {
			return nil, fmt.Errorf("unknown joint %q", strings.TrimSpace(name))
		}
		out = append(out, l)
	}
	return out, nil
}

// dump runs mode for ticks frames from the base pose and collects the
// swept ranges of the joints in only, or of every joint when only is empty.
// Limits are checked on every joint regardless.
func dump(mode animation.Mode, ticks int, seed int64, only []joint.Label, log zerolog.Logger) (*Report, error) {
	if ticks < 0 {
		return nil, fmt.Errorf("ticks must not be negative, got %d", ticks)
	}
	model := joint.NewModel()
	m := animation.NewMachine(model, rand.New(rand.NewSource(seed)), log)
	if err := m.SetMode(mode); err != nil {
		return nil, err
	}

	start := model.Snapshot()
	lo, hi := start, start
	var violations []string
	for i := 1; i <= ticks; i++ {
		m.Tick()
		for _, l := range joint.Labels() {
			for a, axis := range joint.Axes {
				v := model.Rotation(axis, l)
				lo[l].Rot[a] = min(lo[l].Rot[a], v)
				hi[l].Rot[a] = max(hi[l].Rot[a], v)

				// body x/y are free and driven by the user, not the animation
				if l == joint.Body && axis != joint.AxisZ {
					continue
				}
				if low, high := model.Limits(axis, l); v < low || v > high {
					violations = append(violations,
						fmt.Sprintf("tick %d: %s %c=%g outside [%g, %g]", i, l, axis, v, low, high))
				}
			}
		}
	}

	r := &Report{
		Mode:       mode.String(),
		Ticks:      ticks,
		Seed:       seed,
		FinalMode:  m.Mode().String(),
		Joints:     make(map[string]JointReport, joint.Count),
		Parts:      make(map[string]PartReport, rig.PartCount),
		Violations: violations,
	}
	if len(only) == 0 {
		only = joint.Labels()
	}
	wanted := make(map[joint.Label]bool, len(only))
	for _, l := range only {
		wanted[l] = true

		jr := JointReport{Base: joint.Base(l).Rot, Target: m.Target(l)}
		ranges := [3]**Range{&jr.X, &jr.Y, &jr.Z}
		for a := range joint.Axes {
			if lo[l].Rot[a] == hi[l].Rot[a] {
				continue
			}
			*ranges[a] = &Range{Min: lo[l].Rot[a], Max: hi[l].Rot[a]}
		}
		r.Joints[l.String()] = jr
	}

	pose := rig.Compose(model, m.Frame())
	for i := 0; i < rig.PartCount; i++ {
		p := rig.Part(i)
		if !wanted[p.Joint()] {
			continue
		}
		pr := PartReport{Origin: pose.Origin(p)}
		if parent := p.Parent(); parent.Valid() {
			pr.Parent = parent.String()
		}
		r.Parts[p.String()] = pr
	}
	return r, nil
}

func write(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
