package compare

import "github.com/dgallion1/docdiff/internal/section"

// Category is the label of the only section this tool compares.
const Category = "Serviços"

// Header lists the column titles of the comparison table.
var Header = []string{"Categoria", "Item do Orçamento 1", "Status", "Item do Orçamento 2"}

// Row is one line of the comparison table.
type Row struct {
	Category string `json:"category" yaml:"category"`
	ValueA   string `json:"value_a" yaml:"value_a"`
	Status   string `json:"status" yaml:"status"`
	ValueB   string `json:"value_b" yaml:"value_b"`
}

// Cells returns the row in column order.
func (r Row) Cells() []string {
	return []string{r.Category, r.ValueA, r.Status, r.ValueB}
}

// Rows shapes the result into table rows: kept, then removed, then added.
func (r Result) Rows() []Row {
	entries := r.Entries()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{Category: Category, Status: e.Outcome.Status()}
		switch e.Outcome {
		case Kept:
			row.ValueA, row.ValueB = e.Key, e.Key
		case Removed:
			row.ValueA = e.Key
		case Added:
			row.ValueB = e.Key
		}
		rows = append(rows, row)
	}
	return rows
}

// Summary holds the counts shown next to the table.
type Summary struct {
	ItemsA  int `json:"items_a" yaml:"items_a"`
	ItemsB  int `json:"items_b" yaml:"items_b"`
	Kept    int `json:"kept" yaml:"kept"`
	Changed int `json:"changed" yaml:"changed"`
	Removed int `json:"removed" yaml:"removed"`
	Added   int `json:"added" yaml:"added"`
}

// Empty reports whether neither document yielded any service item.
func (s Summary) Empty() bool {
	return s.ItemsA == 0 && s.ItemsB == 0
}

// Incomplete reports whether at least one document yielded no service item,
// so the comparison cannot tell kept lines from removed or added ones.
func (s Summary) Incomplete() bool {
	return s.ItemsA == 0 || s.ItemsB == 0
}

// Comparison is the full outcome for two raw document texts.
type Comparison struct {
	ItemsA  []string `json:"items_a"`
	ItemsB  []string `json:"items_b"`
	Result  Result   `json:"result"`
	Summary Summary  `json:"summary"`
}

// Texts extracts the services block of both texts and diffs them.
// ItemsA and ItemsB count extracted lines, repeats included.
func Texts(textA, textB string) Comparison {
	itemsA := nonNil(section.Extract(textA))
	itemsB := nonNil(section.Extract(textB))
	res := Diff(itemsA, itemsB)
	return Comparison{
		ItemsA: itemsA,
		ItemsB: itemsB,
		Result: res,
		Summary: Summary{
			ItemsA:  len(itemsA),
			ItemsB:  len(itemsB),
			Kept:    len(res.Kept),
			Changed: len(res.Changed),
			Removed: len(res.Removed),
			Added:   len(res.Added),
		},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
