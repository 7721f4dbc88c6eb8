package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownRenderer converts GitHub-flavored Markdown into lipgloss-styled
// terminal output. Parsing is goldmark's job; this type only supplies the
// rendering policy: a fixed table mapping each AST node kind to a small
// render function. Kinds without an entry pass through as raw source text.
//
// The renderer is stateless between calls; Render is a pure function of
// (content, styles, width).
type MarkdownRenderer struct {
	styles Styles
	width  int
	md     goldmark.Markdown
}

// renderFunc renders a single AST node to styled text.
type renderFunc func(r *MarkdownRenderer, n ast.Node, source []byte) string

// nodeRenderers is the node-kind dispatch table. Closed over the kinds the
// GFM-extended parser produces for the supported syntax; anything else falls
// through to the pass-through default in renderNode.
var nodeRenderers map[ast.NodeKind]renderFunc

// The table is populated in init rather than a composite literal because the
// entries reference methods that in turn read the table, which the compiler
// rejects as an initialization cycle.
func init() {
	nodeRenderers = map[ast.NodeKind]renderFunc{
		ast.KindDocument:        (*MarkdownRenderer).renderChildBlocks,
		ast.KindHeading:         (*MarkdownRenderer).renderHeading,
		ast.KindParagraph:       (*MarkdownRenderer).renderParagraph,
		ast.KindTextBlock:       (*MarkdownRenderer).renderInlineChildren,
		ast.KindList:            (*MarkdownRenderer).renderList,
		ast.KindListItem:        (*MarkdownRenderer).renderChildBlocks,
		ast.KindFencedCodeBlock: (*MarkdownRenderer).renderCodeBlock,
		ast.KindCodeBlock:       (*MarkdownRenderer).renderCodeBlock,
		ast.KindBlockquote:      (*MarkdownRenderer).renderBlockquote,
		ast.KindThematicBreak:   (*MarkdownRenderer).renderThematicBreak,
		ast.KindText:            (*MarkdownRenderer).renderText,
		ast.KindString:          (*MarkdownRenderer).renderString,
		ast.KindCodeSpan:        (*MarkdownRenderer).renderCodeSpan,
		ast.KindEmphasis:        (*MarkdownRenderer).renderEmphasis,
		ast.KindLink:            (*MarkdownRenderer).renderLink,
		ast.KindAutoLink:        (*MarkdownRenderer).renderAutoLink,
		ast.KindImage:           (*MarkdownRenderer).renderImage,
		east.KindTable:          (*MarkdownRenderer).renderTable,
		east.KindStrikethrough:  (*MarkdownRenderer).renderStrikethrough,
		east.KindTaskCheckBox:   (*MarkdownRenderer).renderTaskCheckBox,
	}
}

// NewMarkdownRenderer creates a renderer for the given styles and wrap width.
func NewMarkdownRenderer(styles Styles, width int) *MarkdownRenderer {
	if width < SidebarMinWidth {
		width = SidebarMinWidth
	}
	return &MarkdownRenderer{
		styles: styles,
		width:  width,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render parses content and renders it to styled terminal text.
func (r *MarkdownRenderer) Render(content string) string {
	source := []byte(content)
	doc := r.md.Parser().Parse(text.NewReader(source))
	return strings.TrimRight(r.renderNode(doc, source), "\n")
}

// renderNode dispatches on node kind, with raw-source pass-through as the
// default for unmapped kinds.
func (r *MarkdownRenderer) renderNode(n ast.Node, source []byte) string {
	if f, ok := nodeRenderers[n.Kind()]; ok {
		return f(r, n, source)
	}
	return r.renderPassthrough(n, source)
}

// renderPassthrough preserves the parser's default behavior for unmapped
// kinds: block nodes emit their raw source lines, inline nodes render their
// children unstyled.
func (r *MarkdownRenderer) renderPassthrough(n ast.Node, source []byte) string {
	if n.Type() == ast.TypeBlock {
		if raw := blockSource(n, source); raw != "" {
			return raw
		}
		return r.renderChildBlocks(n, source)
	}
	return r.renderInlineChildren(n, source)
}

// renderChildBlocks renders block children separated by blank lines.
func (r *MarkdownRenderer) renderChildBlocks(n ast.Node, source []byte) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := r.renderNode(c, source); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// renderInlineChildren concatenates inline children.
func (r *MarkdownRenderer) renderInlineChildren(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		sb.WriteString(r.renderNode(c, source))
	}
	return sb.String()
}

// renderParagraph wraps the paragraph's inline content at the render width.
func (r *MarkdownRenderer) renderParagraph(n ast.Node, source []byte) string {
	txt := r.renderInlineChildren(n, source)
	return lipgloss.NewStyle().Width(r.width).Render(txt)
}

func (r *MarkdownRenderer) renderHeading(n ast.Node, source []byte) string {
	heading := n.(*ast.Heading)
	txt := r.renderInlineChildren(n, source)
	switch heading.Level {
	case 1:
		return r.styles.Heading1.Render(txt)
	case 2:
		return r.styles.Heading2.Render(txt)
	default:
		return r.styles.Heading3.Render(txt)
	}
}

func (r *MarkdownRenderer) renderList(n ast.Node, source []byte) string {
	list := n.(*ast.List)
	indent := strings.Repeat(" ", ListIndent)

	var lines []string
	index := list.Start
	if index == 0 {
		index = 1
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d.", index)
			index++
		}

		var itemParts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if s := r.renderNode(c, source); s != "" {
				itemParts = append(itemParts, s)
			}
		}
		content := strings.Join(itemParts, "\n")

		cont := strings.Repeat(" ", len(marker)+1)
		for i, line := range strings.Split(content, "\n") {
			if i == 0 {
				lines = append(lines, indent+r.styles.Muted.Render(marker)+" "+line)
			} else {
				lines = append(lines, indent+cont+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (r *MarkdownRenderer) renderCodeBlock(n ast.Node, source []byte) string {
	code := strings.TrimRight(blockSource(n, source), "\n")

	var label string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		if lang := fenced.Language(source); lang != nil {
			label = r.styles.Muted.Render(string(lang)) + "\n"
		}
	}
	return label + r.styles.CodeBlock.Render(code)
}

func (r *MarkdownRenderer) renderBlockquote(n ast.Node, source []byte) string {
	return r.styles.Callout.Render(r.renderChildBlocks(n, source))
}

func (r *MarkdownRenderer) renderThematicBreak(ast.Node, []byte) string {
	return r.styles.RenderDivider(r.width)
}

func (r *MarkdownRenderer) renderText(n ast.Node, source []byte) string {
	t := n.(*ast.Text)
	s := string(t.Segment.Value(source))
	if t.SoftLineBreak() || t.HardLineBreak() {
		s += "\n"
	}
	return s
}

func (r *MarkdownRenderer) renderString(n ast.Node, _ []byte) string {
	return string(n.(*ast.String).Value)
}

func (r *MarkdownRenderer) renderCodeSpan(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return r.styles.InlineCode.Render(sb.String())
}

func (r *MarkdownRenderer) renderEmphasis(n ast.Node, source []byte) string {
	em := n.(*ast.Emphasis)
	txt := r.renderInlineChildren(n, source)
	if em.Level >= 2 {
		return r.styles.Bold.Render(txt)
	}
	return r.styles.Italic.Render(txt)
}

func (r *MarkdownRenderer) renderLink(n ast.Node, source []byte) string {
	link := n.(*ast.Link)
	label := r.renderInlineChildren(n, source)
	dest := string(link.Destination)
	if label == "" || label == dest {
		return r.styles.Link.Render(dest)
	}
	return r.styles.Link.Render(label) + r.styles.Muted.Render(" ("+dest+")")
}

func (r *MarkdownRenderer) renderAutoLink(n ast.Node, source []byte) string {
	al := n.(*ast.AutoLink)
	return r.styles.Link.Render(string(al.URL(source)))
}

func (r *MarkdownRenderer) renderImage(n ast.Node, source []byte) string {
	img := n.(*ast.Image)
	alt := r.renderInlineChildren(n, source)
	if alt == "" {
		alt = "image"
	}
	return r.styles.Muted.Render("[" + alt + ": " + string(img.Destination) + "]")
}

func (r *MarkdownRenderer) renderTable(n ast.Node, source []byte) string {
	table := NewSimpleTable("", nil)
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.renderInlineChildren(cell, source))
		}
		if row.Kind() == east.KindTableHeader {
			table.Headers = cells
		} else {
			table.AddRow(cells...)
		}
	}
	return strings.TrimRight(table.View(r.styles), "\n")
}

func (r *MarkdownRenderer) renderStrikethrough(n ast.Node, source []byte) string {
	return r.styles.Strike.Render(r.renderInlineChildren(n, source))
}

func (r *MarkdownRenderer) renderTaskCheckBox(n ast.Node, _ []byte) string {
	if n.(*east.TaskCheckBox).IsChecked {
		return r.styles.Success.Render("☑") + " "
	}
	return r.styles.Muted.Render("☐") + " "
}

// blockSource concatenates a block node's raw source lines.
func blockSource(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
