package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := loadConfig
	t.Cleanup(func() { loadConfig = prev })
	loadConfig = func() (store.Config, error) {
		return store.StaticConfig{Request: params.Default(), Listen: "127.0.0.1:8080"}, nil
	}

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsJSON(t *testing.T) {
	out, err := run(t, "stats", "--view=goal", "--goal-start=2026-01-01", "--goal-end=2026-01-10", "-o", "json")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var got struct {
		View  string `json:"view"`
		Stats struct {
			Total int `json:"total"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.View != "goal" || got.Stats.Total != 10 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestRenderSceneYAML(t *testing.T) {
	out, err := run(t, "render", "--screen=iphone-13-mini", "-o", "yaml")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "width: 1080") || !strings.Contains(out, "height: 2340") {
		t.Fatalf("unexpected scene\n%s", out)
	}
}

func TestRenderMissingSize(t *testing.T) {
	if _, err := run(t, "render"); err == nil {
		t.Fatalf("expected an error without a size")
	}
}

func TestURL(t *testing.T) {
	out, err := run(t, "url", "--width=10", "--height=20", "--view=quarters", "--week-start=sunday")
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	want := "http://127.0.0.1:8080/api/og?height=20&theme=dark&view=quarters&weekStart=sunday&width=10\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestGuideRaw(t *testing.T) {
	out, err := run(t, "guide", "android", "--raw", "--base-url=https://dots.example.com")
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if !strings.Contains(out, "MacroDroid") || !strings.Contains(out, "https://dots.example.com/api/og?height=2556") {
		t.Fatalf("unexpected guide\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	if _, err := run(t, "version", "-s"); err != nil {
		t.Fatalf("version: %v", err)
	}
}

func TestCacheDisabled(t *testing.T) {
	if _, err := run(t, "cache", "purge"); err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("expected a disabled cache error, got %v", err)
	}
}

func TestSubcommands(t *testing.T) {
	want := []string{"render", "preview", "stats", "url", "screens", "key", "guide", "serve", "mcp", "cache", "info", "version", "completion"}
	cmd := New()
	for _, name := range want {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing command %q", name)
		}
	}
}
