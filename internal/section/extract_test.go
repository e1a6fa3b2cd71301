package section

import (
	"reflect"
	"testing"
)

func TestExtract_HeaderItemsTerminator(t *testing.T) {
	text := "Orçamento 42\nServiços\n  Pintura  \nAlvenaria\nGesso\nMão de obra\nPedreiro"
	got := Extract(text)
	want := []string{"Pintura", "Alvenaria", "Gesso"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_NoHeader(t *testing.T) {
	got := Extract("Materiais\nCimento\nAreia\nMão de obra\nPedreiro")
	if len(got) != 0 {
		t.Errorf("expected no items, got %q", got)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("expected no items, got %q", got)
	}
}

func TestExtract_NoTerminatorRunsToEnd(t *testing.T) {
	got := Extract("Serviços\nPintura\n\nAlvenaria\nLimpeza final")
	want := []string{"Pintura", "Alvenaria", "Limpeza final"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_SkipsBlankLines(t *testing.T) {
	got := Extract("SERVIÇOS\n\n   \n\tPintura\r\n\nMÃO DE OBRA")
	want := []string{"Pintura"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_StopsAtFirstTerminator(t *testing.T) {
	text := "Serviços\nPintura\nMão de obra\nPedreiro\nServiços\nGesso"
	got := Extract(text)
	want := []string{"Pintura"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_TerminatorBeforeHeader(t *testing.T) {
	got := Extract("Mão de obra\nServiços\nPintura")
	if len(got) != 0 {
		t.Errorf("expected scan to stop before the header, got %q", got)
	}
}

func TestExtract_ItemContainingHeaderTokenIsDropped(t *testing.T) {
	text := "Serviços\nPintura\nServiço de limpeza\nGesso\nMão de obra"
	got := Extract(text)
	want := []string{"Pintura", "Gesso"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_HeaderWithinLine(t *testing.T) {
	got := Extract("2. Serviços prestados:\nPintura\n3. Mão de obra")
	want := []string{"Pintura"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_PreservesAccentsInOutput(t *testing.T) {
	got := Extract("Serviços\n Instalação elétrica \nMão de obra")
	want := []string{"Instalação elétrica"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}
