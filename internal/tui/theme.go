package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// chartColors cycles through the bar colors when an item has no color of
// its own.
var chartColors = []lipgloss.Color{
	colorBlue, colorGreen, colorPeach, colorMauve, colorTeal, colorSky, colorYellow, colorPink,
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	monthStyle       = lipgloss.NewStyle().Foreground(colorSky).Bold(true)
	closedBadgeStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	filterStyle      = lipgloss.NewStyle().Foreground(colorInfo)

	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorTextStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	successTextStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	selectedRowStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorSurface0).Bold(true).Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	inputStyle        = lipgloss.NewStyle().Foreground(colorText)
	dimStyle          = lipgloss.NewStyle().Foreground(colorOverlay1)

	positiveStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	negativeStyle = lipgloss.NewStyle().Foreground(colorError)

	sepStyle = lipgloss.NewStyle().Foreground(colorSurface2)
)

// amountStyle colors a balance by its sign.
func amountStyle(v float64) lipgloss.Style {
	if v < 0 {
		return negativeStyle
	}
	return positiveStyle
}

// swatch renders a user-chosen hex color, falling back to the palette.
func swatch(hex string, i int) lipgloss.Color {
	if len(hex) == 7 && hex[0] == '#' {
		return lipgloss.Color(hex)
	}
	return chartColors[i%len(chartColors)]
}
