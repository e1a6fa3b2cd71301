package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docdiff/internal/doctree"
)

// TextParser handles plain text files. Every non-blank line is kept as is;
// runs of blank lines separate nodes.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	tree := &doctree.DocTree{Title: trimExt(filename)}
	var block []string

	flush := func() {
		if len(block) > 0 {
			tree.Children = append(tree.Children, &doctree.DocNode{
				Text: strings.Join(block, "\n"),
			})
			block = nil
		}
	}

	first := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return tree, nil
}
