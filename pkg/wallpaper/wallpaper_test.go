package wallpaper

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
)

var pinned = time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)

func request(view grid.View) params.Request {
	r := params.Default()
	r.View = view
	r.Width, r.Height = 390, 844
	return r
}

func TestComposeDays(t *testing.T) {
	w := Compose(request(grid.Days), pinned)
	if w.Today.String() != "2026-04-10" {
		t.Fatalf("unexpected today %s", w.Today)
	}
	if w.Stats.Elapsed != 99 || w.Stats.Left != 265 || w.Stats.Percent != 27.1 {
		t.Fatalf("unexpected stats %+v", w.Stats)
	}
	if w.Scene.Width != 390 || w.Scene.Height != 844 {
		t.Fatalf("unexpected scene size %dx%d", w.Scene.Width, w.Scene.Height)
	}
	if got := w.Summary().Label; got != "265d left · 27.1%" {
		t.Fatalf("unexpected label %q", got)
	}
	if tally := w.Summary().Tally; tally.Past != 99 || tally.Current != 1 || tally.Future != 265 {
		t.Fatalf("unexpected tally %+v", tally)
	}
}

func TestComposeGoalUsesTitle(t *testing.T) {
	r := request(grid.Goal)
	r.GoalTitle = "Marathon"
	w := Compose(r, pinned)
	if w.Scene.Texts[0].Content() != "Marathon" {
		t.Fatalf("expected the goal title first, got %q", w.Scene.Texts[0].Content())
	}
}

func TestComposeLifeUsesLifespan(t *testing.T) {
	r := request(grid.Life)
	r.Lifespan = 80
	w := Compose(r, pinned)
	if w.Stats.Total != 80*grid.WeeksPerYear {
		t.Fatalf("unexpected total %d", w.Stats.Total)
	}
	if got := w.Scene.Label(); got[len(got)-len("to 80"):] != "to 80" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestComposeAppliesOverrides(t *testing.T) {
	r := request(grid.Days)
	r.Background = "#000000"
	w := Compose(r, pinned)
	if w.Theme.Future.Hex() != "#606060" || w.Scene.Background.Hex() != "#000000" {
		t.Fatalf("expected contrast future color, got %+v", w.Theme)
	}
}

func TestComposeTimezone(t *testing.T) {
	r := request(grid.Days)
	r.Timezone = "Pacific/Kiritimati"
	late := time.Date(2026, time.April, 10, 23, 0, 0, 0, time.UTC)
	if got := Compose(r, late).Today.String(); got != "2026-04-11" {
		t.Fatalf("expected the next day in UTC+14, got %s", got)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Compose(request(grid.Months), pinned).PNG(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if cfg.Width != 390 || cfg.Height != 844 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestDescribeNeedsNoSize(t *testing.T) {
	for _, view := range grid.Views() {
		r := request(view)
		want := Compose(r, pinned).Summary()

		r.Width, r.Height = 0, 0
		got := Describe(r, pinned)
		if got.Label != want.Label || got.Stats != want.Stats || got.Tally != want.Tally || got.Today != want.Today {
			t.Fatalf("%s: expected %+v, got %+v", view, want, got)
		}
	}
}
