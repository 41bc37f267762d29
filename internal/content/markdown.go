package content

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RenderText converts a Markdown body into plain text suitable for the
// terminal: headings on their own line, paragraphs separated by blank lines,
// list items prefixed with a dash. Inline emphasis and links collapse to
// their text.
func RenderText(body []byte) string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var b strings.Builder
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.Heading:
			b.WriteString(strings.ToUpper(textOf(node, body)))
			b.WriteString("\n")
			return gmast.WalkSkipChildren, nil
		case *gmast.ListItem:
			b.WriteString("  - ")
			b.WriteString(textOf(node, body))
			b.WriteString("\n")
			return gmast.WalkSkipChildren, nil
		case *gmast.Paragraph:
			b.WriteString(textOf(node, body))
			b.WriteString("\n\n")
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// textOf flattens the text leaves under n in source order.
func textOf(n gmast.Node, body []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(child gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := child.(type) {
		case *gmast.Text:
			b.Write(node.Segment.Value(body))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString(" ")
			}
		case *gmast.String:
			b.Write(node.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
