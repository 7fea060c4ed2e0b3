// Command nanotui runs the nanobot in a terminal.
//
// The figure is drawn as projected bones rasterised into character cells,
// the smoke as shaded dots.
//
// Usage:
//
//	go run ./cmd/nanotui [flags]
//
// Flags:
//
//	--config <path>   YAML file overriding the defaults
//	--mode <name>     start mode
//	--log <path>      write logs to this file (the terminal is busy)
//
// Controls are the desktop viewer's, without the mouse. Ctrl-C also quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/nanobot/pkg/config"
	"github.com/decker502/nanobot/pkg/input"
	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/sim"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	modeFlag    = flag.String("mode", "", "Start mode (standby, fly, dance, walk, reset)")
	logFileFlag = flag.String("log", "", "Log file (logging is off without it)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *modeFlag != "" {
		cfg.Animation.Mode = *modeFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "bad --mode: %v\n", err)
			os.Exit(1)
		}
	}

	log := zerolog.Nop()
	if *logFileFlag != "" {
		f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logging.New(io.Discard, cfg.LogLevel, f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// restore the terminal even if the loop panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "nanotui crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	err = run(screen, cfg, log)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, cfg *config.Config, log zerolog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := sim.New(sim.OptionsFromConfig(cfg), rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 64)
	go pumpEvents(ctx, screen.PollEvent, events)

	v := newView(screen, cfg.Camera.View())
	return s.Run(ctx, cfg.TickInterval, func(s *sim.Simulation) error {
	drain:
		for {
			select {
			case ev := <-events:
				if err := handle(s, v, ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}
		v.draw(s)
		return nil
	})
}

// pumpEvents forwards terminal events until poll reports the screen is gone
// or ctx ends. Events are only applied on the tick loop.
func pumpEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func handle(s *sim.Simulation, v *termView, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.Apply(input.Lookup(translateKey(ev)))
	case *tcell.EventResize:
		v.resize()
	}
	return nil
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyRune:
		return input.KeyFromRune(ev.Rune())
	}
	return input.KeyNone
}
