// Package export serializes comparison tables for download.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docdiff/internal/compare"
)

// Format is a download format for the comparison table.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	PDF  Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{CSV, XLSX, PDF}

// BaseFilename is the download name without extension.
const BaseFilename = "tabela_comparacao_servicos"

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	switch f {
	case CSV, XLSX, PDF:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format: %q", s)
}

func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case PDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

func (f Format) Filename() string {
	return BaseFilename + "." + string(f)
}

// Write encodes rows in the given format. The summary is only used by PDF.
func Write(w io.Writer, f Format, rows []compare.Row, summary compare.Summary) error {
	switch f {
	case CSV:
		return WriteCSV(w, rows)
	case XLSX:
		return WriteXLSX(w, rows)
	case PDF:
		return WritePDF(w, rows, summary)
	}
	return fmt.Errorf("unsupported export format: %q", string(f))
}
