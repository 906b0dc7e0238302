// Package stats reports the progress numbers behind a wallpaper.
package stats

import (
	"context"
	"io"
	"os"
	"time"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

type Stats struct {
	Request params.Request
	Clock   wallpaper.Clock
	// Format is "" for a table, or json / yaml.
	Format  string
	Printer *printers.PrettyPrint
	Stdout  io.Writer
}

func (s *Stats) Do(ctx context.Context) error {
	now := time.Now
	if s.Clock != nil {
		now = s.Clock
	}
	summary := wallpaper.Describe(s.Request, now())

	if s.Format != "" {
		f, err := printers.ParseFormat(s.Format)
		if err != nil {
			return err
		}
		out := s.Stdout
		if out == nil {
			out = os.Stdout
		}
		return printers.Encode(out, f, summary)
	}

	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Summary(summary)
	return nil
}
