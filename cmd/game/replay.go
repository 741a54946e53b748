package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/interactor/internal/application/replay"
	"github.com/younwookim/interactor/internal/application/scene/playing"
	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/config"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// simulate feeds every recorded frame through a fresh scene without a
// window and returns the resulting world state.
func simulate(cfg *config.GameConfig, level *config.LevelConfig, replayer *replay.Replayer) (ecs.Snapshot, error) {
	p, err := playing.New(cfg, level, nil, "")
	if err != nil {
		return ecs.Snapshot{}, err
	}
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		p.Step(input)
	}
	return ecs.Capture(p.World(), level.ID), nil
}

// runReplay replays a recording headless and writes the final state as YAML
func runReplay(loader *config.Loader, cfg *config.GameConfig, path string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	level, err := loader.LoadLevel(data.Level)
	if err != nil {
		return err
	}

	replayer := replay.NewReplayer(*data)
	snap, err := simulate(cfg, level, replayer)
	if err != nil {
		return err
	}
	logger.Log.WithField("frames", replayer.TotalFrames()).WithField("level", data.Level).Info("Replay finished")

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode final state: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
