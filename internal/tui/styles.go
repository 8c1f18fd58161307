// package tui provides the terminal user interface for the araçtakip client.
// This file defines the shared lipgloss styles used across the different
// views to ensure a consistent look and feel. Two palettes exist; the stored
// theme preference picks one at startup and the settings view switches live.
package tui // import "github.com/aractakip/aractakip/internal/tui"

import "github.com/charmbracelet/lipgloss"

// Theme names, stored under the "tema" key.
const (
	ThemeLight = "acik"
	ThemeDark  = "koyu"
)

// palette holds the core colors of a theme.
type palette struct {
	subtle    lipgloss.Color
	highlight lipgloss.Color
	special   lipgloss.Color
	errc      lipgloss.Color
	success   lipgloss.Color
	text      lipgloss.Color
}

var darkPalette = palette{
	subtle:    lipgloss.Color("240"), // Muted gray
	highlight: lipgloss.Color("81"),  // A nice teal/cyan
	special:   lipgloss.Color("208"), // An orange for special attention
	errc:      lipgloss.Color("196"), // A bright red
	success:   lipgloss.Color("40"),  // A nice green
	text:      lipgloss.Color("231"),
}

var lightPalette = palette{
	subtle:    lipgloss.Color("245"),
	highlight: lipgloss.Color("31"),
	special:   lipgloss.Color("166"),
	errc:      lipgloss.Color("124"),
	success:   lipgloss.Color("28"),
	text:      lipgloss.Color("235"),
}

// Styles rebuilt by SetTheme. Defaults to the dark palette.
var (
	docStyle           lipgloss.Style
	helpStyle          lipgloss.Style
	errorStyle         lipgloss.Style
	successStyle       lipgloss.Style
	specialStyle       lipgloss.Style
	mainTitleStyle     lipgloss.Style
	titleStyle         lipgloss.Style
	itemStyle          lipgloss.Style
	selectedItemStyle  lipgloss.Style
	inactiveItemStyle  lipgloss.Style
	formItemStyle      lipgloss.Style
	formSelectedStyle  lipgloss.Style
	focusedStyle       lipgloss.Style
	statusMessageStyle lipgloss.Style
	totalBoxStyle      lipgloss.Style
	barStyle           lipgloss.Style
)

func init() {
	SetTheme(ThemeDark)
}

// SetTheme rebuilds the shared styles from the named theme's palette.
func SetTheme(name string) {
	p := darkPalette
	if name == ThemeLight {
		p = lightPalette
	}

	docStyle = lipgloss.NewStyle().Margin(1, 2)
	helpStyle = lipgloss.NewStyle().Foreground(p.subtle)
	errorStyle = lipgloss.NewStyle().Foreground(p.errc)
	successStyle = lipgloss.NewStyle().Foreground(p.success)
	specialStyle = lipgloss.NewStyle().Foreground(p.special)

	mainTitleStyle = lipgloss.NewStyle().
		Foreground(p.highlight).
		Bold(true).
		Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
		Foreground(p.highlight).
		Bold(true).
		Padding(1, 2)

	itemStyle = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(p.highlight)
	inactiveItemStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(p.subtle)

	formItemStyle = lipgloss.NewStyle()
	formSelectedStyle = lipgloss.NewStyle().Foreground(p.highlight)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	statusMessageStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.text).
		Background(p.highlight)

	totalBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.highlight).
		Padding(0, 1)

	barStyle = lipgloss.NewStyle().Foreground(p.highlight)
}
