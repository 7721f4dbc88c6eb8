// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for panel sizing
const (
	// Sidebar dimensions
	SidebarWidth    = 28
	SidebarMinWidth = 20

	// Panel borders and spacing
	PanelBorderWidth = 2
	PanelPaddingH    = 1
	ContentIndent    = 2
	ListIndent       = 2

	// Control areas
	HeaderHeight = 1
	FooterHeight = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24
)

// ContentWidth returns the usable width right of the sidebar.
func ContentWidth(terminalWidth int) int {
	w := terminalWidth - SidebarWidth
	if w < SidebarMinWidth {
		w = SidebarMinWidth
	}
	return w
}

// ContentHeight returns the usable height between header and footer.
func ContentHeight(terminalHeight int) int {
	h := terminalHeight - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

// PanelContentWidth returns the content width inside a bordered panel.
func PanelContentWidth(panelWidth int) int {
	return panelWidth - PanelBorderWidth - (PanelPaddingH * 2)
}
