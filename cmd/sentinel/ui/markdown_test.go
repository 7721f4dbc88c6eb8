package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *MarkdownRenderer {
	return NewMarkdownRenderer(NewStyles(LightTheme()), 60)
}

func TestMarkdownHeadingAndBold(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("# Title\n\nSome **bold** text.")

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Title", "level-1 heading should be the first block")
	assert.Contains(t, out, "Some")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "text.")
}

func TestMarkdownRenderIsIdempotent(t *testing.T) {
	r := newTestRenderer()
	input := "# Title\n\nSome **bold** text.\n\n- one\n- two\n"
	first := r.Render(input)
	second := r.Render(input)
	assert.Equal(t, first, second, "same input must yield structurally identical output")
}

func TestMarkdownHeadingLevels(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("# One\n\n## Two\n\n### Three")
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
	assert.Contains(t, out, "Three")
}

func TestMarkdownFencedCodeBlockPreservesLiteralText(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("```go\nfmt.Println(\"a < b && c\")\nreturn *ptr\n```")

	// Each code line must survive unmodified (no re-formatting or escaping).
	assert.Contains(t, out, `fmt.Println("a < b && c")`)
	assert.Contains(t, out, "return *ptr")
	assert.Contains(t, out, "go", "language label should be shown")
}

func TestMarkdownLists(t *testing.T) {
	r := newTestRenderer()

	out := r.Render("- alpha\n- beta\n")
	assert.Contains(t, out, "• alpha")
	assert.Contains(t, out, "• beta")

	out = r.Render("1. first\n2. second\n")
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")

	// Ordered lists honor a non-default start.
	out = r.Render("3. third\n4. fourth\n")
	assert.Contains(t, out, "3. third")
	assert.Contains(t, out, "4. fourth")
}

func TestMarkdownTaskList(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("- [x] done\n- [ ] pending\n")
	assert.Contains(t, out, "☑")
	assert.Contains(t, out, "☐")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "pending")
}

func TestMarkdownBlockquote(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("> escalation pending review")
	assert.Contains(t, out, "escalation pending review")
}

func TestMarkdownTable(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("| Time | Event |\n|------|-------|\n| 09:42 | rejected |\n| 09:51 | flagged |\n")

	assert.Contains(t, out, "Time")
	assert.Contains(t, out, "Event")
	assert.Contains(t, out, "09:42")
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "flagged")
}

func TestMarkdownThematicBreak(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("before\n\n---\n\nafter")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestMarkdownLinkShowsDestination(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("see [the policy](https://example.test/policy)")
	assert.Contains(t, out, "the policy")
	assert.Contains(t, out, "https://example.test/policy")
}

func TestMarkdownStrikethrough(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("~~release~~ hold")
	assert.Contains(t, out, "release")
	assert.Contains(t, out, "hold")
}

func TestMarkdownInlineCode(t *testing.T) {
	r := newTestRenderer()
	out := r.Render("run `sentinel check` now")
	assert.Contains(t, out, "sentinel check")
}

func TestMarkdownUnmappedNodePassesThrough(t *testing.T) {
	r := newTestRenderer()
	// HTML blocks have no dispatch-table entry; the raw source must survive.
	out := r.Render("<div class=\"note\">raw html</div>")
	assert.Contains(t, out, `<div class="note">raw html</div>`)
}

func TestMarkdownEmptyInput(t *testing.T) {
	r := newTestRenderer()
	assert.Equal(t, "", r.Render(""))
}
