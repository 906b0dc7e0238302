// Package screens lists the phone resolution presets.
package screens

import (
	"context"
	"io"
	"os"
	"strings"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
)

type Screens struct {
	// Category keeps only presets of one maker, e.g. "apple".
	Category string
	Format   string
	Printer  *printers.PrettyPrint
	Stdout   io.Writer
}

func (s *Screens) Do(ctx context.Context) error {
	list := params.Screens()
	if s.Category != "" {
		kept := list[:0]
		for _, sc := range list {
			if strings.EqualFold(sc.Category, s.Category) {
				kept = append(kept, sc)
			}
		}
		list = kept
	}

	if s.Format != "" {
		f, err := printers.ParseFormat(s.Format)
		if err != nil {
			return err
		}
		out := s.Stdout
		if out == nil {
			out = os.Stdout
		}
		return printers.Encode(out, f, list)
	}

	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Screens(list)
	return nil
}
