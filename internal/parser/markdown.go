package parser

import (
	"io"
	"strings"

	"github.com/dgallion1/docdiff/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings open new
// nodes; every other block keeps its source lines.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	tree := &doctree.DocTree{Title: trimExt(filename)}

	current := &doctree.DocNode{}
	var lines []string
	flush := func() {
		current.Text = strings.Join(lines, "\n")
		if current.Title != "" || current.Text != "" {
			tree.Children = append(tree.Children, current)
		}
		lines = nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.Heading); ok {
			flush()
			current = &doctree.DocNode{Title: blockText(n, src)}
			continue
		}
		if t := blockText(n, src); t != "" {
			lines = append(lines, t)
		}
	}
	flush()

	return tree, nil
}

// blockText returns the source lines of a block. Container blocks (lists,
// quotes) contribute the lines of their child blocks, one per line.
func blockText(n ast.Node, src []byte) string {
	if n.Type() != ast.TypeBlock {
		return ""
	}
	if fc := n.FirstChild(); fc != nil && fc.Type() == ast.TypeBlock {
		var parts []string
		for c := fc; c != nil; c = c.NextSibling() {
			if t := blockText(c, src); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n")
	}

	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimSpace(string(seg.Value(src)))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}
