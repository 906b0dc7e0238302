// Package preview prints a wallpaper's dot grid in the terminal.
package preview

import (
	"context"
	"time"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

// Preview draws the grid with one glyph per dot, followed by the label.
type Preview struct {
	Request params.Request
	Clock   wallpaper.Clock
	Printer *printers.PrettyPrint
}

func (p *Preview) Do(ctx context.Context) error {
	now := time.Now
	if p.Clock != nil {
		now = p.Clock
	}
	pp := p.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	wp := wallpaper.Compose(p.Request, now())
	pp.Title(string(wp.Grid.View) + " " + wp.Today.String())
	pp.Preview(wp.Grid, wp.Theme)
	pp.NewLine()
	pp.Title(wp.Scene.Label())
	return nil
}
