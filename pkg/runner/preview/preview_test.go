package preview

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
)

func TestPreviewGoal(t *testing.T) {
	r := params.Default()
	r.View = grid.Goal
	r.GoalTitle = "Ship it"

	var buf bytes.Buffer
	p := &Preview{
		Request: r,
		Clock:   func() time.Time { return time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC) },
		Printer: &printers.PrettyPrint{Out: &buf},
	}
	if err := p.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "goal 2026-03-01") {
		t.Fatalf("missing title in\n%s", out)
	}
	if strings.Count(out, "◉") != 1 {
		t.Fatalf("expected one current dot in\n%s", out)
	}
	if !strings.Contains(out, "d left · ") {
		t.Fatalf("missing label in\n%s", out)
	}
}
