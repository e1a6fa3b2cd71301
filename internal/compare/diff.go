// Package compare classifies the service lines of two budget versions into
// kept, removed and added items and shapes the outcome into table rows.
package compare

import "github.com/dgallion1/docdiff/internal/section"

// Outcome is the classification of one normalized key.
type Outcome int

const (
	Kept Outcome = iota
	Removed
	Added
	// Changed is reserved for similarity-based matching and is never produced
	// by Diff.
	Changed
)

// Status returns the label used in the comparison table.
func (o Outcome) Status() string {
	switch o {
	case Kept:
		return "Manteve"
	case Removed:
		return "Removido"
	case Added:
		return "Incluído"
	case Changed:
		return "Alterado"
	}
	return ""
}

func (o Outcome) String() string {
	switch o {
	case Kept:
		return "kept"
	case Removed:
		return "removed"
	case Added:
		return "added"
	case Changed:
		return "changed"
	}
	return "unknown"
}

// Entry pairs a normalized key with its outcome.
type Entry struct {
	Outcome Outcome `json:"outcome"`
	Key     string  `json:"key"`
}

// Result is the set-level comparison of two item lists.
// Kept and Removed follow the first-seen order of A; Added follows B.
type Result struct {
	Kept    []string `json:"kept"`
	Changed []string `json:"changed"`
	Removed []string `json:"removed"`
	Added   []string `json:"added"`
}

// Diff normalizes both lists and compares their distinct keys. Repeated items
// within one list collapse to a single key.
func Diff(a, b []string) Result {
	setA := normalizedSet(a)
	setB := normalizedSet(b)

	res := Result{
		Kept:    []string{},
		Changed: []string{},
		Removed: []string{},
		Added:   []string{},
	}
	for _, key := range setA.Keys() {
		if setB.Contains(key) {
			res.Kept = append(res.Kept, key)
		} else {
			res.Removed = append(res.Removed, key)
		}
	}
	for _, key := range setB.Keys() {
		if !setA.Contains(key) {
			res.Added = append(res.Added, key)
		}
	}
	return res
}

func normalizedSet(items []string) *OrderedSet {
	s := NewOrderedSet()
	for _, item := range items {
		s.Add(section.Normalize(item))
	}
	return s
}

// Entries flattens the result in table order: kept, removed, added.
func (r Result) Entries() []Entry {
	out := make([]Entry, 0, len(r.Kept)+len(r.Removed)+len(r.Added))
	for _, k := range r.Kept {
		out = append(out, Entry{Outcome: Kept, Key: k})
	}
	for _, k := range r.Removed {
		out = append(out, Entry{Outcome: Removed, Key: k})
	}
	for _, k := range r.Added {
		out = append(out, Entry{Outcome: Added, Key: k})
	}
	return out
}
