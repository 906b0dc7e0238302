// Package cache maintains the rendered wallpaper cache.
package cache

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/store"
	"tableflip.dev/dotcal/pkg/wallpaper"
)

// Purge removes wallpapers rendered before today minus Keep days.
type Purge struct {
	Cache  store.Cache
	Keep   int
	Clock  wallpaper.Clock
	Stdout io.Writer
}

func (p *Purge) Do(ctx context.Context) error {
	if p.Cache == nil {
		return fmt.Errorf("cache: no cache configured")
	}
	now := time.Now
	if p.Clock != nil {
		now = p.Clock
	}
	keep := p.Keep
	if keep < 0 {
		keep = 0
	}
	before := date.FromTime(now()).AddDays(-keep)

	n, err := p.Cache.Purge(ctx, before)
	if err != nil {
		return err
	}
	out := p.Stdout
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "purged %d wallpapers rendered before %s\n", n, before)
	return nil
}
