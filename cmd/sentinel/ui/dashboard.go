package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"portsentinel/internal/cases"
)

// Dashboard is the root model: it owns currentView, composes the sidebar
// with the content pages, and routes the sidebar's upward intents.
type Dashboard struct {
	styles Styles
	store  *cases.Store

	sidebar     Sidebar
	diagnostics DiagnosticsPage
	casePage    CasePage

	currentView string
	width       int
	height      int

	showHelp bool
	helpText string
}

type setViewMsg struct{ id string }
type createCaseMsg struct{}

const helpMarkdown = `# PortSentinel Console

## Keys

| Key | Action |
|-----|--------|
| tab | switch focus between sidebar and content |
| ↑/↓ | move selection / scroll |
| enter | activate selection |
| n | new case |
| ? | toggle this help |
| q | quit |

On the diagnostics page: **s** checks the service, **g** generates a
summary, **a** runs both, **c** copies the summary path.
`

// NewDashboard assembles the console around a case store and summary API.
func NewDashboard(store *cases.Store, api summaryAPI, incidentID string, styles Styles) Dashboard {
	sidebar := NewSidebar(DefaultNavItems(len(store.Recent())), styles)
	sidebar.SetProjects(store.Projects())
	sidebar.SetRecentCases(store.Recent())
	sidebar.OnViewChange = func(id string) tea.Cmd {
		return func() tea.Msg { return setViewMsg{id: id} }
	}
	sidebar.OnNewCase = func() tea.Cmd {
		return func() tea.Msg { return createCaseMsg{} }
	}

	d := Dashboard{
		styles:      styles,
		store:       store,
		sidebar:     sidebar,
		diagnostics: NewDiagnosticsPage(api, incidentID, styles),
		casePage:    NewCasePage(styles),
		currentView: "dashboard",
	}
	d.sidebar.SetCurrentView(d.currentView)
	return d
}

// CurrentView returns the active view id.
func (d Dashboard) CurrentView() string { return d.currentView }

// Init implements tea.Model.
func (d Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return d, tea.Quit
		case "?":
			d.showHelp = !d.showHelp
			if d.showHelp && d.helpText == "" {
				d.helpText = d.renderHelp()
			}
			return d, nil
		case "tab":
			d.sidebar.SetFocused(!d.sidebar.Focused())
			return d, nil
		}
		if d.showHelp {
			return d, nil
		}
		if d.sidebar.Focused() {
			var cmd tea.Cmd
			d.sidebar, cmd = d.sidebar.Update(msg)
			return d, cmd
		}
		return d.updateContent(msg)

	case setViewMsg:
		d.setView(msg.id)
		return d, nil

	case createCaseMsg:
		c := d.store.New()
		d.sidebar.SetRecentCases(d.store.Recent())
		d.sidebar.SelectedCaseID = c.ID
		d.setView(CaseDetailViewID)
		return d, nil

	default:
		return d.updateContent(msg)
	}
}

// updateContent routes a message to the active content page.
func (d Dashboard) updateContent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch d.currentView {
	case "diagnostics":
		d.diagnostics, cmd = d.diagnostics.Update(msg)
	case CaseDetailViewID:
		d.casePage, cmd = d.casePage.Update(msg)
	}
	return d, cmd
}

// setView switches the active view and keeps the sidebar marker in sync.
func (d *Dashboard) setView(id string) {
	d.currentView = id
	d.sidebar.SetCurrentView(id)
	if id == CaseDetailViewID {
		if c, ok := d.store.Get(d.sidebar.SelectedCaseID); ok {
			d.casePage.ShowCase(c)
		}
	}
}

// SetSize propagates terminal dimensions.
func (d *Dashboard) SetSize(w, h int) {
	d.width = w
	d.height = h
	contentW := ContentWidth(w)
	contentH := ContentHeight(h)
	d.sidebar.SetSize(SidebarWidth, contentH)
	d.diagnostics.SetSize(contentW, contentH)
	d.casePage.SetSize(contentW, contentH)
	d.helpText = "" // re-rendered at the new width on next toggle
}

// View implements tea.Model.
func (d Dashboard) View() string {
	if d.width > 0 && d.width < MinimumTerminalWidth {
		return d.styles.Warning.Render(
			fmt.Sprintf("Terminal too narrow (%d cols, need %d).", d.width, MinimumTerminalWidth))
	}

	content := d.contentView()
	if d.showHelp {
		content = d.helpText
		if content == "" {
			content = d.renderHelp()
		}
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, d.sidebar.View(), content)
	footer := d.styles.Footer.Render("tab: focus • ?: help • q: quit")
	return main + "\n" + footer
}

func (d Dashboard) contentView() string {
	switch d.currentView {
	case "diagnostics":
		return d.diagnostics.View()
	case CaseDetailViewID:
		return d.casePage.View()
	case "cases":
		return d.casesView()
	case "reports":
		return d.styles.Content.Render(d.styles.Muted.Render("Reports are generated per incident; open a case to view its summary."))
	case "settings":
		return d.styles.Content.Render(d.styles.Muted.Render("Settings are read from the configuration file at startup."))
	default:
		return d.overviewView()
	}
}

// overviewView is the landing page: case counts by severity.
func (d Dashboard) overviewView() string {
	bySeverity := map[string]int{}
	open := 0
	for _, c := range d.store.Recent() {
		bySeverity[c.Severity]++
		if c.Status != "resolved" {
			open++
		}
	}

	table := NewSimpleTable("Open Case Load", []string{"Severity", "Count"})
	for _, sev := range []string{cases.SeverityCritical, cases.SeverityHigh, cases.SeverityMedium, cases.SeverityLow} {
		if n := bySeverity[sev]; n > 0 {
			table.AddRow(sev, fmt.Sprintf("%d", n))
		}
	}

	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(d.styles.Muted.Render(fmt.Sprintf("%d cases tracked, %d open", len(d.store.Recent()), open)))
	b.WriteString("\n\n")
	b.WriteString(table.View(d.styles))
	return d.styles.Content.Render(b.String())
}

// casesView lists every tracked case.
func (d Dashboard) casesView() string {
	table := NewSimpleTable("Cases", []string{"ID", "Title", "Severity", "Status"})
	for _, c := range d.store.Recent() {
		table.AddRow(c.ID, c.Title, c.Severity, c.Status)
	}

	var b strings.Builder
	b.WriteString(table.View(d.styles))
	b.WriteString("\n")
	b.WriteString(d.styles.Muted.Render("Select an entry under Recent Cases to open its summary."))
	return d.styles.Content.Render(b.String())
}

// renderHelp renders the help markdown with glamour, falling back to the
// raw text if the renderer cannot be built.
func (d Dashboard) renderHelp() string {
	width := ContentWidth(d.width)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return d.styles.Content.Render(helpMarkdown)
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return d.styles.Content.Render(helpMarkdown)
	}
	return out
}
