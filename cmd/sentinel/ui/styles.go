// Package ui provides the visual styling and view components for the
// PortSentinel interactive console. Light/dark mode supported.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the PortSentinel console.
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f5f6f8") // near-white
	LightForeground = lipgloss.Color("#14213d") // deep navy
	LightPrimary    = lipgloss.Color("#14213d") // deep navy
	LightAccent     = lipgloss.Color("#0e9594") // harbor teal
	LightSecondary  = lipgloss.Color("#e3e7ee")
	LightMuted      = lipgloss.Color("#8b94a7")
	LightBorder     = lipgloss.Color("#d5dae3")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0f1625")
	DarkForeground = lipgloss.Color("#e8ebf0")
	DarkPrimary    = lipgloss.Color("#0e9594") // teal (flipped)
	DarkAccent     = lipgloss.Color("#14213d") // navy (flipped)
	DarkSecondary  = lipgloss.Color("#1a2438")
	DarkMuted      = lipgloss.Color("#5b6578")
	DarkBorder     = lipgloss.Color("#2a3650")
	DarkCard       = lipgloss.Color("#171f32")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e5484d") // red
	Success     = lipgloss.Color("#46a758") // green
	Warning     = lipgloss.Color("#ffb224") // amber
	Info        = lipgloss.Color("#3b82f6") // blue
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; ANSI backgrounds 0-6
	// and 8 indicate a dark terminal.
	colorTerm := os.Getenv("COLORFGBG")
	if colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("PORTSENTINEL_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Panel   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	Strike   lipgloss.Style
	Link     lipgloss.Style

	// Headings (markdown levels 1-3)
	Heading1 lipgloss.Style
	Heading2 lipgloss.Style
	Heading3 lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Code
	CodeBlock  lipgloss.Style
	InlineCode lipgloss.Style

	// Components
	Badge        lipgloss.Style
	BadgeSuccess lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeMuted   lipgloss.Style
	Callout      lipgloss.Style
	Divider      lipgloss.Style
	Spinner      lipgloss.Style

	// Sidebar
	SidebarItem       lipgloss.Style
	SidebarActive     lipgloss.Style
	SidebarSection    lipgloss.Style
	SidebarChild      lipgloss.Style
	SidebarChildMuted lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Italic: lipgloss.NewStyle().
			Italic(true),

		Strike: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(theme.Muted),

		Link: lipgloss.NewStyle().
			Foreground(Info).
			Underline(true),

		Heading1: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true),

		Heading2: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Heading3: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		CodeBlock: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		InlineCode: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Primary).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		BadgeSuccess: lipgloss.NewStyle().
			Background(Success).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		BadgeError: lipgloss.NewStyle().
			Background(Destructive).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		BadgeMuted: lipgloss.NewStyle().
			Background(theme.Secondary).
			Foreground(theme.Muted).
			Padding(0, 1),

		Callout: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Info),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		SidebarItem: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		SidebarActive: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		SidebarSection: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		SidebarChild: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 3),

		SidebarChildMuted: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 3),
	}
}

// DefaultStyles returns styles with the auto-detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// BadgeFor maps a badge color name from the navigation data to a style.
func (s Styles) BadgeFor(color string) lipgloss.Style {
	switch color {
	case "red":
		return s.BadgeError
	case "green":
		return s.BadgeSuccess
	case "muted":
		return s.BadgeMuted
	default:
		return s.Badge
	}
}
