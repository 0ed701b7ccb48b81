package goldmark

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vibecod3rs/vibe"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type replyRenderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	heading   lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
	code      lipgloss.Style
}

func newReplyRenderer(theme vibe.Theme) *replyRenderer {
	return &replyRenderer{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		heading:   lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
		code:      lipgloss.NewStyle().Foreground(ansiColor(theme.ModelMsg)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *replyRenderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var out bytes.Buffer
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n, source, width, &out)
		if n.NextSibling() != nil {
			out.WriteString("\n")
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

func (r *replyRenderer) wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (r *replyRenderer) block(node ast.Node, source []byte, width int, out *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		out.WriteString(r.wrap(r.inlines(n, source), width))
		out.WriteString("\n")

	case *ast.Heading:
		out.WriteString(r.wrap(r.heading.Render(r.inlines(n, source)), width))
		out.WriteString("\n")

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(source)); lang != "" {
			out.WriteString(r.muted.Render(lang))
			out.WriteString("\n")
		}
		r.codeLines(n, source, out)

	case *ast.CodeBlock:
		r.codeLines(n, source, out)

	case *ast.List:
		r.list(n, source, width, out, 0)

	case *ast.ThematicBreak:
		out.WriteString(r.muted.Render("---"))
		out.WriteString("\n")

	default:
		// Blockquotes and anything else: render children plainly.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(c, source, width, out)
		}
	}
}

func (r *replyRenderer) codeLines(node ast.Node, source []byte, out *bytes.Buffer) {
	gutter := r.muted.Render("│") + " "
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out.WriteString(gutter)
		out.WriteString(strings.TrimRight(string(seg.Value(source)), "\n"))
		out.WriteString("\n")
	}
}

func (r *replyRenderer) list(node *ast.List, source []byte, width int, out *bytes.Buffer, depth int) {
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		indent := strings.Repeat("  ", depth)

		var body bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				body.WriteString(r.inlines(in, source))
			case *ast.List:
				if body.Len() > 0 {
					r.listItem(out, indent+marker, body.String(), width)
					body.Reset()
				}
				r.list(in, source, width, out, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.block(ic, source, width, &body)
			}
		}
		if body.Len() > 0 {
			r.listItem(out, indent+marker, body.String(), width)
		}
	}
}

// listItem writes content after prefix, indenting wrapped lines under the
// first character of the content.
func (r *replyRenderer) listItem(out *bytes.Buffer, prefix, content string, width int) {
	w := max(width-len(prefix), 10)
	pad := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(r.wrap(content, w), "\n") {
		if i == 0 {
			out.WriteString(prefix)
		} else {
			out.WriteString(pad)
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
}

func (r *replyRenderer) inlines(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(c, source, &buf)
	}
	return buf.String()
}

func (r *replyRenderer) inline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			buf.WriteByte('\n')
		case n.SoftLineBreak():
			buf.WriteByte(' ')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inlines(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		buf.WriteString(r.code.Render(r.inlines(n, source)))

	case *ast.Link:
		buf.WriteString(r.underline.Render(r.inlines(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.inline(c, source, buf)
		}
	}
}
