package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portsentinel/internal/cases"
)

type viewChangeMsg struct{ id string }
type newCaseMsg struct{}

// testSidebar wires counting callbacks so tests can assert exact invocations.
func testSidebar(t *testing.T) (*Sidebar, *[]string, *int) {
	t.Helper()
	s := NewSidebar(DefaultNavItems(3), NewStyles(LightTheme()))
	s.SetSize(28, 30)

	viewChanges := &[]string{}
	newCases := new(int)
	s.OnViewChange = func(id string) tea.Cmd {
		*viewChanges = append(*viewChanges, id)
		return func() tea.Msg { return viewChangeMsg{id: id} }
	}
	s.OnNewCase = func() tea.Cmd {
		*newCases++
		return func() tea.Msg { return newCaseMsg{} }
	}
	return &s, viewChanges, newCases
}

func TestSidebarNavActivationCallsViewChangeExactlyOnce(t *testing.T) {
	s, viewChanges, newCases := testSidebar(t)

	items := DefaultNavItems(0)
	for i, item := range items {
		*viewChanges = (*viewChanges)[:0]
		next, cmd := s.Activate(i)
		*s = next

		require.NotNil(t, cmd)
		require.Len(t, *viewChanges, 1, "item %s must emit exactly one view change", item.ID)
		assert.Equal(t, item.ID, (*viewChanges)[0])
		assert.Equal(t, 0, *newCases, "nav activation must not trigger the new-case callback")
	}
}

func TestSidebarNewCaseActivation(t *testing.T) {
	s, viewChanges, newCases := testSidebar(t)

	// The "+ New Case" row sits directly after the nav items.
	next, cmd := s.Activate(len(DefaultNavItems(0)))
	*s = next

	require.NotNil(t, cmd)
	assert.Equal(t, 1, *newCases)
	assert.Empty(t, *viewChanges)
	assert.IsType(t, newCaseMsg{}, cmd())
}

func TestSidebarActiveMarkerFollowsCurrentView(t *testing.T) {
	s, _, _ := testSidebar(t)
	s.SetCurrentView("diagnostics")

	var marked []string
	for _, line := range strings.Split(s.View(), "\n") {
		if strings.Contains(line, "▶") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1, "exactly one entry may carry the active marker")
	assert.Contains(t, marked[0], "Diagnostics")
}

func TestSidebarDisclosureSectionsToggleIndependently(t *testing.T) {
	s, _, _ := testSidebar(t)
	assert.False(t, s.ProjectsOpen(), "sections default closed")
	assert.False(t, s.RecentOpen(), "sections default closed")

	projectsIdx := len(DefaultNavItems(0)) + 1
	recentIdx := projectsIdx + 1

	next, _ := s.Activate(projectsIdx)
	*s = next
	assert.True(t, s.ProjectsOpen())
	assert.False(t, s.RecentOpen(), "toggling Projects must not affect Recent Cases")

	next, _ = s.Activate(recentIdx)
	*s = next
	assert.True(t, s.ProjectsOpen())
	assert.True(t, s.RecentOpen())

	next, _ = s.Activate(projectsIdx)
	*s = next
	assert.False(t, s.ProjectsOpen())
	assert.True(t, s.RecentOpen(), "closing Projects must not affect Recent Cases")
}

// Every recent-case entry routes to the same fixed detail view. This is the
// literal shipped behavior, kept deliberately even though it looks like an
// oversight. The chosen entry is still observable through SelectedCaseID.
func TestSidebarRecentCaseSelectionAlwaysOpensCaseDetail(t *testing.T) {
	s, viewChanges, _ := testSidebar(t)
	store := cases.NewStore()
	s.SetRecentCases(store.Recent())

	recentIdx := len(DefaultNavItems(0)) + 2
	next, _ := s.Activate(recentIdx)
	*s = next
	require.True(t, s.RecentOpen())

	for i, c := range store.Recent() {
		*viewChanges = (*viewChanges)[:0]
		next, cmd := s.Activate(recentIdx + 1 + i)
		*s = next

		require.NotNil(t, cmd, "case %s", c.ID)
		require.Len(t, *viewChanges, 1)
		assert.Equal(t, CaseDetailViewID, (*viewChanges)[0],
			"every recent case routes to the fixed detail view")
		assert.Equal(t, c.ID, s.SelectedCaseID)
	}
}

func TestSidebarKeyboardNavigation(t *testing.T) {
	s, viewChanges, _ := testSidebar(t)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	*s = next
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	*s = next

	require.NotNil(t, cmd)
	require.Len(t, *viewChanges, 1)
	assert.Equal(t, "cases", (*viewChanges)[0])
}

func TestSidebarIgnoresKeysWhenUnfocused(t *testing.T) {
	s, viewChanges, newCases := testSidebar(t)
	s.SetFocused(false)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	*s = next
	assert.Nil(t, cmd)
	assert.Empty(t, *viewChanges)
	assert.Equal(t, 0, *newCases)
}

func TestSidebarBadgeRendered(t *testing.T) {
	s, _, _ := testSidebar(t)
	assert.Contains(t, s.View(), "3", "open-case badge text should be visible")
}
