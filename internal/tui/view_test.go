package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestChartColorsAreValidHex(t *testing.T) {
	for _, c := range chartColors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestSwatchFallsBackToPalette(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		i    int
		want lipgloss.Color
	}{
		{"own color", "#123456", 0, "#123456"},
		{"empty", "", 1, chartColors[1]},
		{"malformed", "blue", 0, chartColors[0]},
		{"wraps", "", len(chartColors) + 2, chartColors[2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := swatch(tt.hex, tt.i); got != tt.want {
				t.Fatalf("swatch(%q, %d) = %q, want %q", tt.hex, tt.i, got, tt.want)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	tests := map[float64]string{
		0:       "$0.00",
		12.5:    "$12.50",
		-3.456:  "-$3.46",
		1000.01: "$1000.01",
	}
	for v, want := range tests {
		if got := money(v); got != want {
			t.Errorf("money(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestBarWidthIsFixed(t *testing.T) {
	for _, v := range []float64{0, 5, 10, 50} {
		if w := ansi.StringWidth(bar(v, 10, colorBlue)); w != barWidth {
			t.Fatalf("bar(%v) width = %d, want %d", v, w, barWidth)
		}
	}
	if full := ansi.Strip(bar(10, 10, colorBlue)); strings.Contains(full, "░") {
		t.Fatalf("full bar has empty cells: %q", full)
	}
}

func TestOverlayKeepsBaseAroundPopup(t *testing.T) {
	base := strings.Repeat(strings.Repeat("x", 40)+"\n", 9) + strings.Repeat("x", 40)
	out := renderOverlay(base, "hi", 40, 10)

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d, want 10", len(lines))
	}
	if ansi.Strip(lines[0]) != strings.Repeat("x", 40) {
		t.Fatalf("first line changed: %q", lines[0])
	}
	if !strings.Contains(ansi.Strip(out), "hi") {
		t.Fatal("popup text missing")
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 40 {
			t.Fatalf("line %d width = %d, want 40", i, w)
		}
	}
}
