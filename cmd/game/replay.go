package main

import (
	"fmt"
	"io"

	"github.com/younwookim/barrelrun/internal/application/replay"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// runReplay plays a recording without a window and writes the outcome to w
func runReplay(cfg *config.GameConfig, levels map[int]*entity.Level, path string, w io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	res, err := replay.Run(cfg, levels, *data, nil)
	if err != nil {
		return err
	}

	p := res.Player.Position
	_, err = fmt.Fprintf(w, "level %d seed %d: %s after %d frames, score %d, player at (%.2f, %.2f, %.2f)\n",
		res.Level, res.Seed, res.Mode, res.Frames, res.Score, p[0], p[1], p[2])
	return err
}
