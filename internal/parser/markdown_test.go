package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsOpenNodes(t *testing.T) {
	input := `# Orçamento

Cliente: Maria

## Serviços

- Pintura
- Alvenaria

## Mão de obra

Pedreiro
`
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "orcamento.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "orcamento" {
		t.Errorf("expected title %q, got %q", "orcamento", tree.Title)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(tree.Children))
	}

	svc := tree.Children[1]
	if svc.Title != "Serviços" {
		t.Errorf("expected heading %q, got %q", "Serviços", svc.Title)
	}
	if svc.Text != "Pintura\nAlvenaria" {
		t.Errorf("expected list items one per line, got %q", svc.Text)
	}

	want := "Orçamento\nCliente: Maria\nServiços\nPintura\nAlvenaria\nMão de obra\nPedreiro"
	if got := tree.Text(); got != want {
		t.Errorf("expected flattened text %q, got %q", want, got)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := "Just some plain text.\n\nAnother paragraph here."

	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child for headingless markdown, got %d", len(tree.Children))
	}
	text := tree.Children[0].Text
	if text != "Just some plain text.\nAnother paragraph here." {
		t.Errorf("unexpected text %q", text)
	}
}

func TestMarkdownParser_ParagraphLinesKept(t *testing.T) {
	input := "**Serviços**\nPintura\nGesso\n"

	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "soft.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Text(); got != "**Serviços**\nPintura\nGesso" {
		t.Errorf("expected soft-wrapped lines kept, got %q", got)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		tree, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if tree.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, tree.Title)
		}
	}
}
