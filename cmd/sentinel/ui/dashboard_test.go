package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portsentinel/internal/cases"
)

func newTestDashboard() Dashboard {
	store := cases.NewStore()
	d := NewDashboard(store, &fakeSummaryAPI{}, "INC-TEST-001", NewStyles(LightTheme()))
	d.SetSize(120, 40)
	return d
}

func TestDashboardStartsOnOverview(t *testing.T) {
	d := newTestDashboard()
	assert.Equal(t, "dashboard", d.CurrentView())
	assert.Contains(t, d.View(), "Dashboard")
	assert.Contains(t, d.View(), "cases tracked")
}

func TestDashboardRoutesViewChange(t *testing.T) {
	d := newTestDashboard()

	model, _ := d.Update(setViewMsg{id: "diagnostics"})
	d = model.(Dashboard)

	assert.Equal(t, "diagnostics", d.CurrentView())
	assert.Contains(t, d.View(), "Summary Service Diagnostics")
}

func TestDashboardSidebarSelectionRoundTrip(t *testing.T) {
	d := newTestDashboard()

	// Activate the "Cases" nav entry through the sidebar's callback wiring.
	var cmd tea.Cmd
	d.sidebar, cmd = d.sidebar.Activate(1)
	require.NotNil(t, cmd)

	model, _ := d.Update(cmd())
	d = model.(Dashboard)
	assert.Equal(t, "cases", d.CurrentView())
	assert.Contains(t, d.View(), "INC-2024-0117")
}

func TestDashboardOpensCaseDetail(t *testing.T) {
	d := newTestDashboard()

	recentIdx := len(DefaultNavItems(0)) + 2
	d.sidebar, _ = d.sidebar.Activate(recentIdx) // open the disclosure
	require.True(t, d.sidebar.RecentOpen())

	var cmd tea.Cmd
	d.sidebar, cmd = d.sidebar.Activate(recentIdx + 1)
	require.NotNil(t, cmd)

	model, _ := d.Update(cmd())
	d = model.(Dashboard)

	assert.Equal(t, CaseDetailViewID, d.CurrentView())
	view := d.View()
	assert.Contains(t, view, "Unauthorized berth access attempt")
	assert.Contains(t, view, "Timeline")
}

func TestDashboardNewCaseFlow(t *testing.T) {
	d := newTestDashboard()
	before := len(d.store.Recent())

	model, _ := d.Update(createCaseMsg{})
	d = model.(Dashboard)

	assert.Len(t, d.store.Recent(), before+1)
	assert.Equal(t, CaseDetailViewID, d.CurrentView())
	assert.Contains(t, d.View(), "Untitled case")
}

func TestDashboardQuit(t *testing.T) {
	d := newTestDashboard()
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDashboardHelpOverlayToggle(t *testing.T) {
	d := newTestDashboard()

	model, _ := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	d = model.(Dashboard)
	assert.Contains(t, d.View(), "PortSentinel Console")

	model, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	d = model.(Dashboard)
	assert.Contains(t, d.View(), "Dashboard")
}

func TestDashboardTooNarrowWarning(t *testing.T) {
	d := newTestDashboard()
	model, _ := d.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	d = model.(Dashboard)
	assert.Contains(t, d.View(), "Terminal too narrow")
}

func TestDashboardFocusToggle(t *testing.T) {
	d := newTestDashboard()
	assert.True(t, d.sidebar.Focused())

	model, _ := d.Update(tea.KeyMsg{Type: tea.KeyTab})
	d = model.(Dashboard)
	assert.False(t, d.sidebar.Focused())
}
