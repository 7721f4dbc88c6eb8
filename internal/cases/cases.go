// Package cases holds the session-scoped case data shown by the dashboard:
// projects, recent cases, and their Markdown summaries. Nothing here is
// persisted; the store lives and dies with the process.
package cases

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity buckets for a case.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Case is a single incident case.
type Case struct {
	ID       string
	Title    string
	Severity string
	Status   string
	Opened   time.Time
	// Summary is GitHub-flavored Markdown rendered by the dashboard.
	Summary string
}

// Project groups cases under a named investigation.
type Project struct {
	Name      string
	CaseCount int
}

// Store is the in-memory case registry.
type Store struct {
	projects []Project
	cases    []Case
}

// NewStore returns a store seeded with the demo dataset.
func NewStore() *Store {
	return &Store{
		projects: seedProjects(),
		cases:    seedCases(),
	}
}

// Projects returns the project list in display order.
func (s *Store) Projects() []Project {
	return s.projects
}

// Recent returns cases newest-first.
func (s *Store) Recent() []Case {
	return s.cases
}

// Get returns the case with the given id.
func (s *Store) Get(id string) (Case, bool) {
	for _, c := range s.cases {
		if c.ID == id {
			return c, true
		}
	}
	return Case{}, false
}

// New mints a fresh case and prepends it to the recent list.
func (s *Store) New() Case {
	c := Case{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf("Untitled case (%s)", time.Now().Format("Jan 2 15:04")),
		Severity: SeverityMedium,
		Status:   "open",
		Opened:   time.Now(),
		Summary:  "# New Case\n\nNo summary has been generated yet.\n",
	}
	s.cases = append([]Case{c}, s.cases...)
	return c
}

func seedProjects() []Project {
	return []Project{
		{Name: "Harbor East Terminal", CaseCount: 4},
		{Name: "Customs Gateway", CaseCount: 2},
		{Name: "Fleet Telemetry", CaseCount: 7},
	}
}

func seedCases() []Case {
	return []Case{
		{
			ID:       "INC-2024-0117",
			Title:    "Unauthorized berth access attempt",
			Severity: SeverityHigh,
			Status:   "investigating",
			Opened:   time.Date(2024, 11, 18, 9, 42, 0, 0, time.UTC),
			Summary: `# Unauthorized Berth Access Attempt

**Status:** investigating | **Severity:** high

## Timeline

| Time (UTC) | Event |
|------------|-------|
| 09:42 | Badge reader rejected credential at berth 14 |
| 09:44 | Second rejection, same credential |
| 09:51 | Perimeter camera flagged loiterer |

## Findings

- Credential belongs to a contractor whose access *expired* on 2024-11-01.
- No physical breach occurred; the gate held.

> Escalation pending review of contractor offboarding procedure.

See [access policy](https://docs.portsentinel.example/policies/access) for
the controlling policy. Next check:

` + "```" + `bash
sentinel check --incident INC-2024-0117
` + "```" + `
`,
		},
		{
			ID:       "INC-2024-0109",
			Title:    "Manifest mismatch, container HLXU-402913",
			Severity: SeverityMedium,
			Status:   "open",
			Opened:   time.Date(2024, 11, 12, 14, 5, 0, 0, time.UTC),
			Summary: `# Manifest Mismatch

Container **HLXU-402913** declared 240 units; scan counted 212.

1. Request amended manifest from shipper
2. Hold container in bonded area
3. ~~Release to consignee~~ (blocked until resolved)
`,
		},
		{
			ID:       "INC-2024-0093",
			Title:    "AIS transponder gap, vessel MV Kestrel",
			Severity: SeverityLow,
			Status:   "resolved",
			Opened:   time.Date(2024, 10, 30, 3, 18, 0, 0, time.UTC),
			Summary: `# AIS Transponder Gap

A 47-minute AIS gap for *MV Kestrel* was traced to a firmware fault.

---

Resolved: vendor patch applied, no deviation from filed route.
`,
		},
	}
}
