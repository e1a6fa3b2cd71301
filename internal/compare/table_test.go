package compare

import (
	"reflect"
	"testing"
)

func TestTexts_EndToEnd(t *testing.T) {
	docA := "Serviços\nPintura\nAlvenaria\nMão de obra\nPedreiro"
	docB := "Serviços\nPintura\nGesso\nMão de obra\nPedreiro"

	cmp := Texts(docA, docB)

	if !reflect.DeepEqual(cmp.ItemsA, []string{"Pintura", "Alvenaria"}) {
		t.Errorf("items A: got %q", cmp.ItemsA)
	}
	if !reflect.DeepEqual(cmp.ItemsB, []string{"Pintura", "Gesso"}) {
		t.Errorf("items B: got %q", cmp.ItemsB)
	}

	want := []Row{
		{Category: "Serviços", ValueA: "Pintura", Status: "Manteve", ValueB: "Pintura"},
		{Category: "Serviços", ValueA: "Alvenaria", Status: "Removido", ValueB: ""},
		{Category: "Serviços", ValueA: "", Status: "Incluído", ValueB: "Gesso"},
	}
	if got := cmp.Result.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("rows:\nexpected %v\ngot      %v", want, got)
	}

	wantSummary := Summary{ItemsA: 2, ItemsB: 2, Kept: 1, Removed: 1, Added: 1}
	if cmp.Summary != wantSummary {
		t.Errorf("summary: expected %+v, got %+v", wantSummary, cmp.Summary)
	}
}

func TestTexts_NoSectionIsEmptyNotError(t *testing.T) {
	cmp := Texts("Materiais\nCimento", "")
	if !cmp.Summary.Empty() {
		t.Errorf("expected empty summary, got %+v", cmp.Summary)
	}
	if cmp.ItemsA == nil || cmp.ItemsB == nil {
		t.Error("expected non-nil item slices")
	}
	if len(cmp.Result.Rows()) != 0 {
		t.Errorf("expected no rows, got %d", len(cmp.Result.Rows()))
	}
}

func TestTexts_CountsIncludeDuplicates(t *testing.T) {
	cmp := Texts("Serviços\nPintura\nPintura", "Serviços\nPintura")
	if cmp.Summary.ItemsA != 2 {
		t.Errorf("expected 2 extracted items in A, got %d", cmp.Summary.ItemsA)
	}
	if cmp.Summary.Kept != 1 {
		t.Errorf("expected 1 kept key, got %d", cmp.Summary.Kept)
	}
}

func TestRow_Cells(t *testing.T) {
	r := Row{Category: "Serviços", ValueA: "a", Status: "Manteve", ValueB: "a"}
	want := []string{"Serviços", "a", "Manteve", "a"}
	if got := r.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	if len(Header) != len(want) {
		t.Errorf("header has %d columns, row has %d", len(Header), len(want))
	}
}

func TestSummary_EmptyAndIncomplete(t *testing.T) {
	tests := []struct {
		name           string
		s              Summary
		empty, partial bool
	}{
		{"both sides", Summary{ItemsA: 2, ItemsB: 1}, false, false},
		{"only new", Summary{ItemsB: 3, Added: 3}, false, true},
		{"only old", Summary{ItemsA: 1, Removed: 1}, false, true},
		{"neither", Summary{}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Empty(); got != tt.empty {
				t.Errorf("Empty: expected %v, got %v", tt.empty, got)
			}
			if got := tt.s.Incomplete(); got != tt.partial {
				t.Errorf("Incomplete: expected %v, got %v", tt.partial, got)
			}
		})
	}
}
