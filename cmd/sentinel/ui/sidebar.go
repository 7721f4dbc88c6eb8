package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"portsentinel/internal/cases"
)

// CaseDetailViewID is the view every "Recent Cases" selection navigates to.
// The selection deliberately ignores which entry was activated; the chosen
// case id is exposed separately via SelectedCaseID.
const CaseDetailViewID = "case-detail"

// NavItem is one fixed entry of the sidebar menu.
type NavItem struct {
	ID         string
	Label      string
	Icon       string
	Badge      string
	BadgeColor string
}

// DefaultNavItems returns the static navigation menu, defined once per session.
func DefaultNavItems(openCases int) []NavItem {
	items := []NavItem{
		{ID: "dashboard", Label: "Dashboard", Icon: "⌂"},
		{ID: "cases", Label: "Cases", Icon: "▤"},
		{ID: "diagnostics", Label: "Diagnostics", Icon: "✚"},
		{ID: "reports", Label: "Reports", Icon: "≡"},
		{ID: "settings", Label: "Settings", Icon: "⚙"},
	}
	if openCases > 0 {
		items[1].Badge = fmt.Sprintf("%d", openCases)
		items[1].BadgeColor = "red"
	}
	return items
}

type rowKind int

const (
	rowNav rowKind = iota
	rowNewCase
	rowSectionProjects
	rowSectionRecent
	rowProject
	rowCase
)

// sidebarRow is one selectable line of the rendered sidebar.
type sidebarRow struct {
	kind  rowKind
	id    string
	label string
	badge string
	color string
}

// Sidebar is the left navigation panel: a fixed menu, a "New Case" action,
// and two independently collapsible disclosure sections.
type Sidebar struct {
	styles  Styles
	width   int
	height  int
	focused bool

	items       []NavItem
	currentView string

	projects []cases.Project
	recent   []cases.Case

	// Disclosure state, default closed, each toggled only by its own header.
	projectsOpen bool
	recentOpen   bool

	cursor int

	// SelectedCaseID is the id of the last activated recent case.
	SelectedCaseID string

	// Upward intents. Both may be nil.
	OnViewChange func(viewID string) tea.Cmd
	OnNewCase    func() tea.Cmd
}

// NewSidebar creates a sidebar with the given menu.
func NewSidebar(items []NavItem, styles Styles) Sidebar {
	return Sidebar{
		styles:  styles,
		items:   items,
		focused: true,
		width:   SidebarWidth,
	}
}

// SetSize updates the panel dimensions.
func (s *Sidebar) SetSize(width, height int) {
	if width < SidebarMinWidth {
		width = SidebarMinWidth
	}
	s.width = width
	s.height = height
}

// SetFocused marks whether key events are routed here.
func (s *Sidebar) SetFocused(focused bool) { s.focused = focused }

// Focused reports whether the sidebar has focus.
func (s Sidebar) Focused() bool { return s.focused }

// SetCurrentView sets the active view id; the matching entry renders active.
func (s *Sidebar) SetCurrentView(viewID string) { s.currentView = viewID }

// SetProjects replaces the "Projects" disclosure content.
func (s *Sidebar) SetProjects(projects []cases.Project) { s.projects = projects }

// SetRecentCases replaces the "Recent Cases" disclosure content.
func (s *Sidebar) SetRecentCases(recent []cases.Case) { s.recent = recent }

// ProjectsOpen reports the "Projects" disclosure state.
func (s Sidebar) ProjectsOpen() bool { return s.projectsOpen }

// RecentOpen reports the "Recent Cases" disclosure state.
func (s Sidebar) RecentOpen() bool { return s.recentOpen }

// rows builds the currently visible row list.
func (s Sidebar) rows() []sidebarRow {
	rows := make([]sidebarRow, 0, len(s.items)+len(s.projects)+len(s.recent)+3)
	for _, item := range s.items {
		rows = append(rows, sidebarRow{
			kind:  rowNav,
			id:    item.ID,
			label: item.Icon + " " + item.Label,
			badge: item.Badge,
			color: item.BadgeColor,
		})
	}
	rows = append(rows, sidebarRow{kind: rowNewCase, label: "+ New Case"})
	rows = append(rows, sidebarRow{kind: rowSectionProjects, label: "Projects"})
	if s.projectsOpen {
		for _, p := range s.projects {
			rows = append(rows, sidebarRow{
				kind:  rowProject,
				id:    p.Name,
				label: fmt.Sprintf("%s (%d)", p.Name, p.CaseCount),
			})
		}
	}
	rows = append(rows, sidebarRow{kind: rowSectionRecent, label: "Recent Cases"})
	if s.recentOpen {
		for _, c := range s.recent {
			rows = append(rows, sidebarRow{kind: rowCase, id: c.ID, label: c.Title})
		}
	}
	return rows
}

// Update handles key events while the sidebar has focus.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows())-1 {
			s.cursor++
		}
	case "enter", " ":
		return s.activate(s.cursor)
	case "n":
		if s.OnNewCase != nil {
			return s, s.OnNewCase()
		}
	}
	return s, nil
}

// Activate selects the row at the given index, as a pointer-device click
// would. Out-of-range indices are ignored.
func (s Sidebar) Activate(index int) (Sidebar, tea.Cmd) {
	return s.activate(index)
}

func (s Sidebar) activate(index int) (Sidebar, tea.Cmd) {
	rows := s.rows()
	if index < 0 || index >= len(rows) {
		return s, nil
	}

	row := rows[index]
	switch row.kind {
	case rowNav:
		if s.OnViewChange != nil {
			return s, s.OnViewChange(row.id)
		}
	case rowNewCase:
		if s.OnNewCase != nil {
			return s, s.OnNewCase()
		}
	case rowSectionProjects:
		s.projectsOpen = !s.projectsOpen
	case rowSectionRecent:
		s.recentOpen = !s.recentOpen
	case rowProject:
		// Projects are informational; no navigation is defined for them.
	case rowCase:
		s.SelectedCaseID = row.id
		if s.OnViewChange != nil {
			// Always the fixed detail view, whichever entry was chosen.
			return s, s.OnViewChange(CaseDetailViewID)
		}
	}
	return s, nil
}

// View renders the sidebar panel.
func (s Sidebar) View() string {
	innerWidth := s.width - PanelBorderWidth - PanelPaddingH*2
	if innerWidth < 8 {
		innerWidth = 8
	}

	var b strings.Builder
	b.WriteString(s.styles.Title.Render("PortSentinel"))
	b.WriteString("\n")
	b.WriteString(s.styles.RenderDivider(innerWidth))
	b.WriteString("\n")

	for i, row := range s.rows() {
		b.WriteString(s.renderRow(row, i == s.cursor, innerWidth))
		b.WriteString("\n")
	}

	panel := s.styles.Panel
	if s.focused {
		panel = panel.BorderForeground(s.styles.Theme.Accent)
	}
	return panel.Width(innerWidth + PanelPaddingH*2).Render(strings.TrimRight(b.String(), "\n"))
}

func (s Sidebar) renderRow(row sidebarRow, underCursor bool, width int) string {
	switch row.kind {
	case rowSectionProjects, rowSectionRecent:
		chevron := "▸"
		open := (row.kind == rowSectionProjects && s.projectsOpen) ||
			(row.kind == rowSectionRecent && s.recentOpen)
		if open {
			chevron = "▾"
		}
		line := chevron + " " + row.label
		if underCursor && s.focused {
			return s.styles.SidebarActive.Render(line)
		}
		return s.styles.SidebarSection.Render(line)

	case rowProject, rowCase:
		label := truncateLabel(row.label, width-4)
		if underCursor && s.focused {
			return s.styles.SidebarActive.Render("  " + label)
		}
		if row.kind == rowProject {
			return s.styles.SidebarChildMuted.Render(label)
		}
		return s.styles.SidebarChild.Render(label)

	default:
		// Active marker belongs to the entry matching currentView, which is
		// independent of where the cursor sits.
		marker := " "
		if row.kind == rowNav && row.id == s.currentView {
			marker = "▶"
		}
		label := truncateLabel(row.label, width-4-runewidth.StringWidth(row.badge))
		line := marker + " " + label
		if row.badge != "" {
			line += " " + s.styles.BadgeFor(row.color).Render(row.badge)
		}
		switch {
		case underCursor && s.focused:
			return s.styles.SidebarActive.Render(line)
		case row.kind == rowNav && row.id == s.currentView:
			return s.styles.SidebarItem.Bold(true).Render(line)
		default:
			return s.styles.SidebarItem.Render(line)
		}
	}
}

func truncateLabel(label string, max int) string {
	if max < 3 {
		max = 3
	}
	if runewidth.StringWidth(label) > max {
		return runewidth.Truncate(label, max-1, "…")
	}
	return label
}
