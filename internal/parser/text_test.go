package parser

import (
	"strings"
	"testing"
)

func TestTextParser_KeepsLines(t *testing.T) {
	input := "Orçamento 12\nServiços\nPintura\n\nAlvenaria\nMão de obra"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "orcamento.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "orcamento" {
		t.Errorf("expected title %q, got %q", "orcamento", tree.Title)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children))
	}

	want := []string{
		"Orçamento 12\nServiços\nPintura",
		"Alvenaria\nMão de obra",
	}
	for i, w := range want {
		if tree.Children[i].Text != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, tree.Children[i].Text)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestTextParser_CRLFAndBOM(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader("\ufeffServiços\r\nPintura\r\n"), "win.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Text(); got != "Serviços\nPintura" {
		t.Errorf("expected CR and BOM stripped, got %q", got)
	}
}

func TestTextParser_WhitespaceOnlyLines(t *testing.T) {
	// Lines with only whitespace should be treated as blank.
	input := "Para one.\n   \nPara two."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children))
	}
}

func TestTextParser_PreservesIndentation(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader("Serviços\n   Pintura  "), "indent.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Text(); got != "Serviços\n   Pintura  " {
		t.Errorf("expected raw line kept, got %q", got)
	}
}
