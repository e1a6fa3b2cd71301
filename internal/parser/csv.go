package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docdiff/internal/doctree"
)

// CSVParser handles spreadsheet exports. Each record becomes one line with
// its non-empty cells separated by a space, so a "Serviços" row works as a
// section header.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.Comma = sniffDelimiter(data)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{Title: trimExt(filename)}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		var cells []string
		for _, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	if len(lines) > 0 {
		tree.Children = []*doctree.DocNode{{Text: strings.Join(lines, "\n")}}
	}

	return tree, nil
}

// sniffDelimiter peeks at the first line and picks ';' when it outnumbers ','.
// Spreadsheets in pt-BR locales export with ';'.
func sniffDelimiter(data []byte) rune {
	first, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}
