package theme

import (
	"image/color"
	"testing"

	"tableflip.dev/dotcal/pkg/grid"
)

func TestResolveBlackBackgroundPicksLightFuture(t *testing.T) {
	th := Resolve(Dark, "", "#000000", "")
	if th.Background.Hex() != "#000000" {
		t.Fatalf("expected #000000 background, got %s", th.Background)
	}
	if th.Future.Hex() != "#606060" {
		t.Fatalf("expected #606060 future dots, got %s", th.Future)
	}
}

func TestResolveLightBackgroundPicksDarkerFuture(t *testing.T) {
	th := Resolve(Dark, "", "#FFFFFF", "")
	if th.Future.Hex() != "#D1D5DB" {
		t.Fatalf("expected #D1D5DB future dots, got %s", th.Future)
	}
	// 128*3 = 384 sits on the light side of the threshold.
	th = Resolve(Dark, "", "#808080", "")
	if th.Future.Hex() != "#D1D5DB" {
		t.Fatalf("expected #D1D5DB at the threshold, got %s", th.Future)
	}
	th = Resolve(Dark, "", "#7F8080", "")
	if th.Future.Hex() != "#606060" {
		t.Fatalf("expected #606060 just below the threshold, got %s", th.Future)
	}
}

func TestResolveDotOverrideWins(t *testing.T) {
	th := Resolve(Light, "", "#000000", "#123456")
	if th.Future.Hex() != "#123456" {
		t.Fatalf("expected dot override, got %s", th.Future)
	}
	th = Resolve(Light, "", "", "#abcdef")
	if th.Future.Hex() != "#ABCDEF" || th.Background.Hex() != "#F5F5F7" {
		t.Fatalf("unexpected theme %+v", th)
	}
}

func TestResolveAccent(t *testing.T) {
	th := Resolve(Light, "#00FF00", "", "")
	if th.Current.Hex() != "#00FF00" || th.Highlight.Hex() != "#00FF00" {
		t.Fatalf("expected accent on current and highlight, got %+v", th)
	}
	if th.Past.Hex() != "#1A1A1A" {
		t.Fatalf("expected light past color untouched, got %s", th.Past)
	}
}

func TestResolveIgnoresInvalidOverrides(t *testing.T) {
	base := Base(Dark)
	for _, bad := range []string{"", "red", "#fff", "000000", "#GGGGGG", "#1234567", " #123456"} {
		th := Resolve(Dark, bad, bad, bad)
		if th != base {
			t.Fatalf("override %q should be ignored, got %+v", bad, th)
		}
	}
}

func TestUnknownThemeIsDark(t *testing.T) {
	if Base("solarized").Name != Dark {
		t.Fatalf("expected dark fallback")
	}
	if Base("LIGHT").Name != Light {
		t.Fatalf("expected case-insensitive light")
	}
}

func TestThemeDotColors(t *testing.T) {
	th := Base(Dark)
	if th.Dot(grid.Past) != th.Past || th.Dot(grid.Current) != th.Current || th.Dot(grid.Future) != th.Future {
		t.Fatalf("unexpected dot mapping")
	}
}

func TestColorIsImageColor(t *testing.T) {
	var c color.Color = Color{R: 0xF5, G: 0x6B, B: 0x3F}
	got := color.RGBAModel.Convert(c).(color.RGBA)
	if got != (color.RGBA{R: 0xF5, G: 0x6B, B: 0x3F, A: 0xFF}) {
		t.Fatalf("unexpected conversion %+v", got)
	}
}
