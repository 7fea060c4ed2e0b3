// Command nanobot opens a window showing the animated nanobot figure.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>   YAML file overriding the embedded defaults
//	--mode <name>     start mode: standby, fly, dance, walk or reset
//	--log <path>      also write logs to this file
//	--verbose         debug logging
//
// Controls:
//
//	Arrows       - turn and tilt the body
//	1-5          - standby, fly, dance, walk, reboot
//	R            - reset (reboot)
//	F / S        - freeze / show smoke
//	C            - cycle smoke colour
//	W / L        - wireframe / lights
//	A / N / Tab  - select all / none / next joint
//	Left click   - pick joint, Right drag - rotate selected joints
//	H            - help overlay
//	Q / Escape   - quit
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/nanobot/pkg/app"
	"github.com/decker502/nanobot/pkg/config"
	"github.com/decker502/nanobot/pkg/embedded"
	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/settings"
)

var (
	configFlag  = flag.String("config", "", "YAML config file overriding the embedded defaults")
	modeFlag    = flag.String("mode", "", "Start mode (standby, fly, dance, walk, reset)")
	logFileFlag = flag.String("log", "", "Also write logs to this file")
	verboseFlag = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)
	boot := logging.New(os.Stderr, "error")

	cfg, err := config.Load(*configFlag)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	if *modeFlag != "" {
		cfg.Animation.Mode = *modeFlag
		if err := cfg.Validate(); err != nil {
			boot.Fatal().Err(err).Msg("bad --mode")
		}
	}
	if *verboseFlag {
		cfg.LogLevel = "debug"
	}

	var sinks []io.Writer
	if *logFileFlag != "" {
		f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			boot.Fatal().Err(err).Msg("failed to open log file")
		}
		defer f.Close()
		sinks = append(sinks, f)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, sinks...)

	game, err := app.NewApp(app.Config{
		Runtime: cfg,
		Store:   settings.Open(log),
		Log:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize viewer")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("viewer stopped")
	}
	if err := game.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to save preferences")
	}
	log.Info().Msg("viewer closed")
}
