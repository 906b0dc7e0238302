package store

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/grid"
)

func TestCacheRoundTrip(t *testing.T) {
	c := OpenCache(t.TempDir())
	key := KeyFor(date.MustParse("2026-04-10"), url.Values{"view": {"days"}, "width": {"10"}})

	if _, ok := c.Get(key); ok {
		t.Fatalf("expected a miss on an empty cache")
	}
	if err := c.Put(key, []byte("png")); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := c.Get(key)
	if !ok || string(got) != "png" {
		t.Fatalf("expected a hit, got %q, %v", got, ok)
	}
}

func TestKeyFor(t *testing.T) {
	day := date.MustParse("2026-04-10")
	a := KeyFor(day, url.Values{"a": {"1"}, "b": {"2"}})
	b := KeyFor(day, url.Values{"b": {"2"}, "a": {"1"}})
	if a != b {
		t.Fatalf("expected key independent of insertion order")
	}
	if c := KeyFor(day.AddDays(1), url.Values{"a": {"1"}, "b": {"2"}}); c == a {
		t.Fatalf("expected the day to change the key")
	}
	back, err := ParseKey(a.String())
	if err != nil || back != a {
		t.Fatalf("expected %v back, got %v, %v", a, back, err)
	}
	if _, err := ParseKey("nonsense"); err == nil {
		t.Fatalf("expected an error for a malformed key")
	}
}

func TestCachePurge(t *testing.T) {
	base := t.TempDir()
	c := OpenCache(base)
	q := url.Values{"view": {"days"}}
	for _, day := range []string{"2026-04-08", "2026-04-09", "2026-04-10"} {
		if err := c.Put(KeyFor(date.MustParse(day), q), []byte(day)); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	n, err := c.Purge(context.Background(), date.MustParse("2026-04-10"))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected two purged entries, got %d", n)
	}
	keys := c.Keys(context.Background())
	if len(keys) != 1 || keys[0].Day.String() != "2026-04-10" {
		t.Fatalf("expected only today's entry, got %v", keys)
	}
	if _, err := os.Stat(filepath.Join(base, "2026", "04", "10")); err != nil {
		t.Fatalf("expected entries stored by day: %v", err)
	}
}

func TestDisabledCache(t *testing.T) {
	c := OpenCache("")
	key := KeyFor(date.MustParse("2026-04-10"), nil)
	if err := c.Put(key, []byte("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected a disabled cache to miss")
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ".dotcal.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
view: life
birthday: "1985-06-30"
width: 1179
height: 2556
cache:
  path: `+filepath.Join(dir, "cache")+`
serve:
  port: 9999
`)
	t.Setenv("DOTCAL_CONFIG_PATH", dir)
	t.Setenv("DOTCAL_THEME", "light")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := cfg.Defaults()
	if def.View != grid.Life || def.Birthday.String() != "1985-06-30" || def.Width != 1179 || def.Height != 2556 {
		t.Fatalf("unexpected defaults %+v", def)
	}
	if def.Theme != "light" {
		t.Fatalf("expected the environment to set the theme, got %q", def.Theme)
	}
	if cfg.CachePath() != filepath.Join(dir, "cache") {
		t.Fatalf("unexpected cache path %q", cfg.CachePath())
	}
	if cfg.Addr() != "127.0.0.1:9999" || cfg.BaseURL() != "http://127.0.0.1:9999" {
		t.Fatalf("unexpected address %q %q", cfg.Addr(), cfg.BaseURL())
	}
	if got, _ := filepath.Abs(cfg.File()); got != path {
		t.Fatalf("expected %s, got %s", path, cfg.File())
	}
}

func TestLoadConfigRejectsBadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "birthday: yesterday\n")
	t.Setenv("DOTCAL_CONFIG_PATH", dir)
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected an error for an invalid birthday")
	}
}

func TestWatchConfigEmitsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "view: days\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := WatchConfig(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)
	writeConfig(t, dir, "view: months\n")
	// Unrelated files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type != EventConfigChanged || evt.Path != path {
			t.Fatalf("unexpected event %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for config change event")
	}
}

func TestWatchConfigNeedsAFile(t *testing.T) {
	if _, err := WatchConfig(context.Background(), ""); err == nil {
		t.Fatalf("expected an error without a config file")
	}
}
