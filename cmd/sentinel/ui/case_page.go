package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"portsentinel/internal/cases"
)

// CasePage shows a single case's Markdown summary inside a scrollable
// viewport. It holds no state beyond the viewport; content is pushed in
// whenever the dashboard navigates to a case.
type CasePage struct {
	styles   Styles
	renderer *MarkdownRenderer
	viewport viewport.Model

	current *cases.Case
	width   int
	height  int
}

// NewCasePage creates the page.
func NewCasePage(styles Styles) CasePage {
	vp := viewport.New(80, 20)
	return CasePage{
		styles:   styles,
		renderer: NewMarkdownRenderer(styles, 80),
		viewport: vp,
	}
}

// SetSize updates dimensions; maxHeight bounds the scrollable panel.
func (m *CasePage) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w - PanelBorderWidth
	m.viewport.Height = h - 3 // header line + divider + footer
	m.renderer = NewMarkdownRenderer(m.styles, PanelContentWidth(w))
	if m.current != nil {
		m.viewport.SetContent(m.renderer.Render(m.current.Summary))
	}
}

// ShowCase loads a case into the page and re-renders its summary.
func (m *CasePage) ShowCase(c cases.Case) {
	m.current = &c
	m.viewport.SetContent(m.renderer.Render(c.Summary))
	m.viewport.GotoTop()
}

// Update scrolls the viewport.
func (m CasePage) Update(msg tea.Msg) (CasePage, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m CasePage) View() string {
	if m.current == nil {
		return m.styles.Content.Render(m.styles.Muted.Render("No case selected."))
	}

	header := m.styles.Title.Render(m.current.Title) + "  " +
		m.severityBadge(m.current.Severity) + " " +
		m.styles.BadgeMuted.Render(m.current.Status)
	meta := m.styles.Muted.Render(fmt.Sprintf("%s · opened %s",
		m.current.ID, m.current.Opened.Format("2006-01-02 15:04 MST")))

	return m.styles.Content.Render(header + "\n" + meta + "\n\n" + m.viewport.View())
}

func (m CasePage) severityBadge(severity string) string {
	switch severity {
	case cases.SeverityCritical, cases.SeverityHigh:
		return m.styles.BadgeError.Render(severity)
	case cases.SeverityMedium:
		return m.styles.Badge.Render(severity)
	default:
		return m.styles.BadgeMuted.Render(severity)
	}
}
