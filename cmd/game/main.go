package main

import (
	"flag"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/interactor/internal/application/game"
	"github.com/younwookim/interactor/internal/application/scene/playing"
	"github.com/younwookim/interactor/internal/infrastructure/config"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
	"github.com/younwookim/interactor/internal/infrastructure/save"
)

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "demo", "Level to load from configs/levels")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and print the final state")
	flag.Parse()

	logger.Init()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to get config subfs")
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	if *replayFlag != "" {
		if err := runReplay(loader, cfg, *replayFlag); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	level, err := loader.LoadLevel(*levelFlag)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load level")
	}

	saves := save.NewManager(save.Open(cfg.Settings.Save.AppName))
	scene, err := playing.New(cfg, level, saves, *recordFlag)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to build level")
	}

	display := cfg.Settings.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetWindowClosingHandled(true)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("Game stopped")
	}
}
