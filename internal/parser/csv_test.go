package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_RecordsBecomeLines(t *testing.T) {
	input := "Item;Valor\nServiços;\nPintura;1.200,00\nMão de obra;\nPedreiro;800,00\n"
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(input), "orcamento.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Item Valor\nServiços\nPintura 1.200,00\nMão de obra\nPedreiro 800,00"
	if got := tree.Text(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCSVParser_CommaDelimited(t *testing.T) {
	input := "\ufeffServiços,\nPintura,100\n"
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(input), "c.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Text(); got != "Serviços\nPintura 100" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"a;b;c\n1,2;3", ';'},
		{"a,b,c\n", ','},
		{"single", ','},
	}
	for _, tt := range tests {
		if got := sniffDelimiter([]byte(tt.in)); got != tt.want {
			t.Errorf("sniffDelimiter(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
