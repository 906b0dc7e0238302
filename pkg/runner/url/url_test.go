package url

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/dotcal/pkg/grid"
	"tableflip.dev/dotcal/pkg/params"
)

type buffer struct{ bytes.Buffer }

func (*buffer) Close() error { return nil }

func TestURLCanonical(t *testing.T) {
	r := params.Default()
	r.View = grid.Life
	r.Width, r.Height = 1179, 2556

	out := &buffer{}
	u := &URL{Request: r, Base: "https://dots.example.com/", Stdout: out}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	want := "https://dots.example.com/api/og?birthday=1990-01-15&height=2556&theme=dark&view=life&width=1179\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestURLDefaultBase(t *testing.T) {
	r := params.Default()
	r.Width, r.Height = 1, 1
	out := &buffer{}
	if err := (&URL{Request: r, Stdout: out}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.HasPrefix(out.String(), "http://127.0.0.1:8080/api/og?") {
		t.Fatalf("unexpected url %q", out.String())
	}
}

func TestURLNeedsDimensions(t *testing.T) {
	err := (&URL{Request: params.Default(), Stdout: &buffer{}}).Do(context.Background())
	if !errors.Is(err, params.ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
}
