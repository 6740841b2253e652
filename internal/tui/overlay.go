package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderOverlay centers the boxed popup over base. Base columns outside the
// popup's visible span stay untouched, so the dashboard remains readable
// around the modal.
func renderOverlay(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base + "\n" + modalStyle.Render(popup)
	}
	card := modalStyle.Render(popup)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	return composite(fitCanvas(base, width, height), fitCanvas(placed, width, height), width, height)
}

func composite(base, top string, width, height int) string {
	baseLines := canvasLines(base, height)
	topLines := canvasLines(top, height)
	out := make([]string, height)
	for i := range out {
		b := padANSI(baseLines[i], width)
		t := padANSI(topLines[i], width)
		start, end, ok := visibleSpan(t, width)
		if !ok {
			out[i] = b
			continue
		}
		left := ansi.Truncate(b, start, "")
		mid := ansi.Truncate(skipColumns(t, start), end-start, "")
		right := skipColumns(b, end)
		out[i] = padANSI(left+mid+right, width)
	}
	return strings.Join(out, "\n")
}

// visibleSpan finds the first and last non-blank columns of line.
func visibleSpan(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = len(plain) - len(strings.TrimLeft(plain, " "))
	end = ansi.StringWidth(trimmed)
	return start, end, start < end
}

func fitCanvas(s string, width, height int) string {
	lines := canvasLines(s, height)
	for i := range lines {
		lines[i] = padANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func canvasLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func skipColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
