package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/dotcal/pkg/params"
)

func pinned() time.Time { return time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC) }

func request() params.Request {
	r := params.Default()
	r.Width, r.Height = 390, 844
	return r
}

func TestRenderPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.png")
	r := &Render{Request: request(), Clock: pinned, Output: path}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 390 || b.Dy() != 844 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestRenderSceneJSON(t *testing.T) {
	var buf bytes.Buffer
	r := &Render{Request: request(), Clock: pinned, Format: FormatJSON, Stdout: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	var scene struct {
		Width  int               `json:"width"`
		Height int               `json:"height"`
		Dots   []json.RawMessage `json:"dots"`
	}
	if err := json.Unmarshal(buf.Bytes(), &scene); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if scene.Width != 390 || scene.Height != 844 || len(scene.Dots) != 365 {
		t.Fatalf("unexpected scene %dx%d with %d dots", scene.Width, scene.Height, len(scene.Dots))
	}
}

func TestRenderNeedsDimensions(t *testing.T) {
	r := &Render{Request: params.Default(), Clock: pinned, Stdout: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !errors.Is(err, params.ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	r := &Render{Request: request(), Clock: pinned, Format: "gif", Stdout: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}
