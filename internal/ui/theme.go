package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette and the styles derived from it. It is built once per config and
// passed by value into every view; nothing mutates it afterwards.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Sidebar    lipgloss.Color
	Hover      lipgloss.Color
	TextBg     lipgloss.Color

	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Header    lipgloss.Style
	Logo      lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Button    lipgloss.Style
	Panel     lipgloss.Style
	PanelHead lipgloss.Style
	Day       lipgloss.Style
	Today     lipgloss.Style
	Selected  lipgloss.Style
	Indicator lipgloss.Style
	Focused   lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style
	Dialog    lipgloss.Style
	Heading1  lipgloss.Style
	Heading2  lipgloss.Style
	Bullet    lipgloss.Style
}

var defaultPalette = map[string]string{
	"bg":      "#151517",
	"fg":      "#ffffff",
	"button":  "#1890ff",
	"border":  "#26262A",
	"sidebar": "#101010",
	"hover":   "#26262A",
	"text_bg": "#1E1E1E",
}

// NewTheme builds a theme from a color map keyed like the config's color section. Missing
// entries fall back to the dark default palette.
func NewTheme(colors map[string]string) Theme {
	pick := func(name string) lipgloss.Color {
		if c, ok := colors[name]; ok && c != "" {
			return lipgloss.Color(c)
		}
		return lipgloss.Color(defaultPalette[name])
	}

	t := Theme{
		Background: pick("bg"),
		Foreground: pick("fg"),
		Accent:     pick("button"),
		Border:     pick("border"),
		Sidebar:    pick("sidebar"),
		Hover:      pick("hover"),
		TextBg:     pick("text_bg"),
	}

	t.Normal = lipgloss.NewStyle().Foreground(t.Foreground)
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	t.Header = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)
	t.Logo = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Sidebar).
		Bold(true).
		Padding(0, 2)
	t.NavItem = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Sidebar).
		Padding(0, 2)
	t.NavActive = t.NavItem.
		Background(t.Hover).
		Bold(true)
	t.Button = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Accent).
		Padding(0, 1)
	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.PanelHead = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	t.Day = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Sidebar)
	t.Today = t.Day.
		Background(t.Accent).
		Bold(true)
	t.Selected = t.Day.
		Reverse(true).
		Bold(true)
	t.Indicator = lipgloss.NewStyle().Foreground(t.Accent)
	t.Focused = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Accent).
		Bold(true)
	t.Message = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Hover).
		Padding(0, 1)
	t.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
	t.Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)
	t.Heading1 = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	t.Heading2 = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)
	t.Bullet = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))

	return t
}
