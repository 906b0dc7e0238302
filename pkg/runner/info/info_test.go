package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/dotcal/pkg/date"
	"tableflip.dev/dotcal/pkg/store"
)

func TestInfoCounts(t *testing.T) {
	dir := t.TempDir()
	cache := store.OpenCache(dir)
	keys := []store.Key{
		{Day: date.MustParse("2026-04-09"), Hash: "aaaa"},
		{Day: date.MustParse("2026-04-10"), Hash: "aaaa"},
		{Day: date.MustParse("2026-04-10"), Hash: "bbbb"},
	}
	for _, k := range keys {
		if err := cache.Put(k, []byte("png")); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	var buf bytes.Buffer
	i := &Info{
		Config: store.StaticConfig{Cache: dir, Listen: "127.0.0.1:8080"},
		Cache:  cache,
		Stdout: &buf,
	}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "Cache.entries: 3 across 2 days") {
		t.Fatalf("unexpected output\n%s", buf.String())
	}
}

func TestInfoCacheDisabled(t *testing.T) {
	var buf bytes.Buffer
	i := &Info{Config: store.StaticConfig{Listen: "127.0.0.1:8080"}, Stdout: &buf}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "Cache: disabled") {
		t.Fatalf("unexpected output\n%s", buf.String())
	}
}
