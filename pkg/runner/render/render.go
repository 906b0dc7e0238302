// Package render writes a wallpaper to a file or stdout.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

// Format values accepted by Render.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render composes Request and writes it as a PNG or as a scene description.
type Render struct {
	Request params.Request
	Clock   wallpaper.Clock
	// Output is a file path; "" or "-" means Stdout.
	Output string
	Format string
	Stdout io.Writer
}

// Do renders the wallpaper.
func (r *Render) Do(ctx context.Context) error {
	if r.Request.Width <= 0 || r.Request.Height <= 0 {
		return params.ErrDimensions
	}
	now := time.Now
	if r.Clock != nil {
		now = r.Clock
	}
	wp := wallpaper.Compose(r.Request, now())

	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}
	if r.Output != "" && r.Output != "-" {
		f, err := os.Create(r.Output)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch r.Format {
	case "", FormatPNG:
		if err := wp.PNG(out); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	default:
		f, err := printers.ParseFormat(r.Format)
		if err != nil {
			return err
		}
		return printers.Encode(out, f, wp.Scene)
	}
}
