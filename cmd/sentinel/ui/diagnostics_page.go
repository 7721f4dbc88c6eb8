package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"portsentinel/internal/summary"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// summaryAPI is the slice of the summary client the page consumes.
type summaryAPI interface {
	GetServiceStatus(ctx context.Context) (*summary.ServiceStatus, error)
	GenerateExecutionSummary(ctx context.Context, incidentID string, payload map[string]any) (*summary.ExecutionSummary, error)
}

// opStatus tracks one operation's lifecycle. Each of the page's two
// operations carries its own status, so running one never obscures the
// other, and a trigger is ignored while that same operation is in flight.
type opStatus int

const (
	opIdle opStatus = iota
	opRunning
	opPassed
	opFailed
)

// statusOutcome is the result record of a completed service-status check.
type statusOutcome struct {
	ok     bool
	status *summary.ServiceStatus
	errMsg string
}

// generateOutcome is the result record of a completed summary generation.
type generateOutcome struct {
	ok     bool
	result *summary.ExecutionSummary
	errMsg string
}

type statusCheckedMsg struct{ outcome statusOutcome }
type summaryGeneratedMsg struct{ outcome generateOutcome }

// DiagnosticsPage exercises the summary service: a health check and a
// summary-generation run against a fixed incident id, each with independent
// in-flight tracking and a success/failure result panel.
type DiagnosticsPage struct {
	styles     Styles
	api        summaryAPI
	incidentID string

	width  int
	height int
	spin   spinner.Model

	statusState   opStatus
	generateState opStatus

	// Latest result per operation, replaced wholesale on each completion.
	// nil until that operation has completed at least once.
	statusResult   *statusOutcome
	generateResult *generateOutcome

	notice string
}

// NewDiagnosticsPage creates the page. incidentID is the fixed identifier
// every generation run targets.
func NewDiagnosticsPage(api summaryAPI, incidentID string, styles Styles) DiagnosticsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner
	return DiagnosticsPage{
		styles:     styles,
		api:        api,
		incidentID: incidentID,
		spin:       sp,
	}
}

// SetSize updates the page dimensions.
func (m *DiagnosticsPage) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// StatusState returns the service-status operation state.
func (m DiagnosticsPage) StatusState() opStatus { return m.statusState }

// GenerateState returns the summary-generation operation state.
func (m DiagnosticsPage) GenerateState() opStatus { return m.generateState }

// Update handles messages.
func (m DiagnosticsPage) Update(msg tea.Msg) (DiagnosticsPage, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m.triggerStatusCheck()
		case "g":
			return m.triggerGenerate()
		case "a":
			var cmds []tea.Cmd
			var cmd tea.Cmd
			m, cmd = m.triggerStatusCheck()
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			m, cmd = m.triggerGenerate()
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		case "c":
			m.copySummaryPath()
			return m, nil
		}

	case statusCheckedMsg:
		outcome := msg.outcome
		m.statusResult = &outcome
		if outcome.ok {
			m.statusState = opPassed
		} else {
			m.statusState = opFailed
		}
		return m, nil

	case summaryGeneratedMsg:
		outcome := msg.outcome
		m.generateResult = &outcome
		if outcome.ok {
			m.generateState = opPassed
		} else {
			m.generateState = opFailed
		}
		return m, nil

	case spinner.TickMsg:
		if m.statusState == opRunning || m.generateState == opRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// triggerStatusCheck starts the health check unless one is already running.
func (m DiagnosticsPage) triggerStatusCheck() (DiagnosticsPage, tea.Cmd) {
	if m.statusState == opRunning {
		return m, nil
	}
	m.statusState = opRunning
	m.notice = ""
	api := m.api
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		status, err := api.GetServiceStatus(context.Background())
		if err != nil {
			return statusCheckedMsg{outcome: statusOutcome{errMsg: err.Error()}}
		}
		return statusCheckedMsg{outcome: statusOutcome{ok: true, status: status}}
	})
}

// triggerGenerate starts a generation run unless one is already running.
func (m DiagnosticsPage) triggerGenerate() (DiagnosticsPage, tea.Cmd) {
	if m.generateState == opRunning {
		return m, nil
	}
	m.generateState = opRunning
	m.notice = ""
	api := m.api
	incidentID := m.incidentID
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := api.GenerateExecutionSummary(context.Background(), incidentID, map[string]any{
			"source":           "diagnostics-page",
			"include_timeline": true,
		})
		if err != nil {
			return summaryGeneratedMsg{outcome: generateOutcome{errMsg: err.Error()}}
		}
		return summaryGeneratedMsg{outcome: generateOutcome{ok: true, result: result}}
	})
}

func (m *DiagnosticsPage) copySummaryPath() {
	if m.generateResult == nil || !m.generateResult.ok {
		m.notice = m.styles.Muted.Render("No generated summary to copy.")
		return
	}
	path := m.generateResult.result.Summary.SummaryPath
	if err := clipboardWriteAll(path); err != nil {
		m.notice = m.styles.Error.Render("Failed to copy summary path")
		return
	}
	m.notice = m.styles.Success.Render("Copied " + path + " to clipboard")
}

// View renders the page.
func (m DiagnosticsPage) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Summary Service Diagnostics"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("incident " + m.incidentID))
	b.WriteString("\n\n")

	b.WriteString(m.badge("Service Status", m.statusState))
	b.WriteString("  ")
	b.WriteString(m.badge("Summary Generation", m.generateState))
	b.WriteString("\n\n")

	if panel := m.statusPanel(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n\n")
	}
	if panel := m.generatePanel(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("s: check status • g: generate summary • a: run both • c: copy summary path"))

	return m.styles.Content.Render(b.String())
}

// badge renders one operation's tri-state summary badge.
func (m DiagnosticsPage) badge(label string, state opStatus) string {
	name := m.styles.Body.Render(label + ":")
	switch state {
	case opRunning:
		return name + " " + m.spin.View() + m.styles.Muted.Render("running")
	case opPassed:
		return name + " " + m.styles.BadgeSuccess.Render("PASS")
	case opFailed:
		return name + " " + m.styles.BadgeError.Render("FAIL")
	default:
		return name + " " + m.styles.BadgeMuted.Render("UNTESTED")
	}
}

// statusPanel renders the health-check result, or nothing before the first
// completed run.
func (m DiagnosticsPage) statusPanel() string {
	if m.statusResult == nil {
		return ""
	}
	if !m.statusResult.ok {
		return m.failurePanel("Service status check failed", m.statusResult.errMsg)
	}

	s := m.statusResult.status
	body := strings.Join([]string{
		m.styles.Success.Render("✓ Service status check passed"),
		fmt.Sprintf("status:              %s", s.Status),
		fmt.Sprintf("service:             %s", s.Service),
		fmt.Sprintf("agent_4_integration: %s", s.Agent4Integration),
	}, "\n")
	return m.styles.Panel.BorderForeground(Success).Render(body)
}

// generatePanel renders the generation result, or nothing before the first
// completed run.
func (m DiagnosticsPage) generatePanel() string {
	if m.generateResult == nil {
		return ""
	}
	if !m.generateResult.ok {
		return m.failurePanel("Summary generation failed", m.generateResult.errMsg)
	}

	r := m.generateResult.result
	escalation := "no"
	if r.Summary.EscalationRequired {
		escalation = "yes"
	}
	body := strings.Join([]string{
		m.styles.Success.Render("✓ Summary generated"),
		fmt.Sprintf("incident_id:         %s", r.IncidentID),
		fmt.Sprintf("execution_status:    %s", r.Summary.ExecutionStatus),
		fmt.Sprintf("escalation_required: %s", escalation),
		fmt.Sprintf("summary_path:        %s", r.Summary.SummaryPath),
	}, "\n")
	return m.styles.Panel.BorderForeground(Success).Render(body)
}

func (m DiagnosticsPage) failurePanel(title, errMsg string) string {
	body := m.styles.Error.Render("✗ "+title) + "\n" + errMsg
	return m.styles.Panel.BorderForeground(Destructive).Render(body)
}
