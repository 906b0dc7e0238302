// Package key prints the legend of a palette: which color and glyph stands
// for past, today and future.
package key

import (
	"context"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
	"tableflip.dev/dotcal/pkg/theme"
)

// Key prints the resolved theme of Request. With All set it prints every
// built-in theme with the request's overrides applied.
type Key struct {
	Request params.Request
	All     bool
	Printer *printers.PrettyPrint
}

// Do renders the legend tables.
func (k *Key) Do(ctx context.Context) error {
	pp := k.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if !k.All {
		pp.Palette(k.Request.ResolveTheme())
		return nil
	}
	for i, name := range theme.Names() {
		if i > 0 {
			pp.NewLine()
		}
		r := k.Request
		r.Theme = name
		pp.Palette(r.ResolveTheme())
	}
	return nil
}
