package command

import (
	"fmt"

	"github.com/pixil98/dogtown/internal/render"
	"github.com/pixil98/go-errors"
)

type WindowConfig struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"target_fps"`
}

func (w *WindowConfig) Validate() error {
	el := errors.NewErrorList()

	if w.Width < 0 || w.Height < 0 {
		el.Add(fmt.Errorf("window size must not be negative"))
	}
	if w.TargetFPS < 0 {
		el.Add(fmt.Errorf("target_fps must not be negative"))
	}

	return el.Err()
}

func (w *WindowConfig) opts() []render.WindowOpt {
	var opts []render.WindowOpt
	if w.Width > 0 && w.Height > 0 {
		opts = append(opts, render.WithSize(w.Width, w.Height))
	}
	if w.Title != "" {
		opts = append(opts, render.WithTitle(w.Title))
	}
	if w.TargetFPS > 0 {
		opts = append(opts, render.WithTargetFPS(w.TargetFPS))
	}
	return opts
}
