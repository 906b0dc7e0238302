package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
)

func clock() time.Time { return time.Date(2026, time.April, 10, 23, 30, 0, 0, time.UTC) }

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer
	s := &Stats{Request: params.Default(), Clock: clock, Printer: &printers.PrettyPrint{Out: &buf}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "265 days") {
		t.Fatalf("unexpected table\n%s", buf.String())
	}
}

func TestStatsYAMLWithTimezone(t *testing.T) {
	r := params.Default()
	// 23:30 UTC is already the next day in Tokyo.
	r.Timezone = "Asia/Tokyo"

	var buf bytes.Buffer
	s := &Stats{Request: r, Clock: clock, Format: "yaml", Stdout: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	var got struct {
		Today string     `yaml:"today"`
		Stats grid.Stats `yaml:"stats"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Today != "2026-04-11" {
		t.Fatalf("expected the Tokyo date, got %s", got.Today)
	}
	if got.Stats.Elapsed != 100 || got.Stats.Left != 264 {
		t.Fatalf("unexpected stats %+v", got.Stats)
	}
}
