package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docdiff/internal/compare"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteCSV writes the header and rows separated by ';', encoded as UTF-8 with
// a byte order mark so spreadsheet apps detect the accents.
func WriteCSV(w io.Writer, rows []compare.Row) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(tw)
	cw.Comma = ';'

	if err := cw.Write(compare.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Cells()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return tw.Close()
}
