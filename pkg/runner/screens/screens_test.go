package screens

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/dotcal/pkg/params"
	"tableflip.dev/dotcal/pkg/printers"
)

func TestScreensByCategory(t *testing.T) {
	var buf bytes.Buffer
	s := &Screens{Category: "google", Format: "json", Stdout: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got []params.Screen
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Google Pixel 9" {
		t.Fatalf("unexpected screens %+v", got)
	}
}

func TestScreensTable(t *testing.T) {
	var buf bytes.Buffer
	s := &Screens{Printer: &printers.PrettyPrint{Out: &buf}}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), "samsung-galaxy-s24-ultra") {
		t.Fatalf("unexpected table\n%s", buf.String())
	}
	// Filtering works on a copy.
	if len(params.Screens()) != 11 {
		t.Fatalf("presets were modified")
	}
}
