//go:build mobile

// Package mobile wraps the nanobot viewer for ebitenmobile, which packs it
// into an Android .aar or an iOS .xcframework and runs init() when the host
// app loads the library.
//
// Only compiled with -tags mobile:
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.nanobot -o build/android/nanobot.aar -v ./mobile
//
//	# iOS (macOS only)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Nanobot.xcframework -v ./mobile
//
// pkg/embedded stays uninitialised here, so config.Load uses its built-in
// defaults (kept equal to data/nanobot.yaml).
package mobile

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/nanobot/pkg/app"
	"github.com/decker502/nanobot/pkg/config"
	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/settings"
)

func init() {
	// gomobile forwards stderr to logcat
	log := logging.New(os.Stderr, "debug")

	// defaults only, there is no command line on a phone
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	game, err := app.NewApp(app.Config{
		Runtime: cfg,
		Store:   settings.Open(log),
		Log:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize viewer")
	}

	// hand the viewer to ebitenmobile
	mobile.SetGame(game)
}

// Dummy does nothing. ebitenmobile needs at least one exported function to
// bind the package.
func Dummy() {}
