package section

import "testing"

func TestNormalize_FoldsAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Instalação", "Instalacao"},
		{"INSTALAÇÃO", "INSTALACAO"},
		{"Pintura acrílica", "Pintura acrilica"},
		{"Elétrica e hidráulica", "Eletrica e hidraulica"},
		{"Você", "Voce"},
		{"Ônibus Ótimo Último Índice", "Onibus Otimo Ultimo Indice"},
		{"ÂÊÉÁ", "AEEA"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormalize_TrimsButKeepsInternalSpacing(t *testing.T) {
	got := Normalize("  Reboco   interno \t")
	if got != "Reboco   interno" {
		t.Errorf("expected internal spacing preserved, got %q", got)
	}
}

func TestNormalize_NoCaseFoldingOrPunctuation(t *testing.T) {
	got := Normalize("Pintura - PAREDE (m²).")
	if got != "Pintura - PAREDE (m²)." {
		t.Errorf("expected text untouched, got %q", got)
	}
}

func TestNormalize_LeavesUnlistedAccents(t *testing.T) {
	// à and õ are not in the table.
	got := Normalize("àõü")
	if got != "àõü" {
		t.Errorf("expected unlisted accents preserved, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "  ", "Instalação elétrica", "  Forro de gesso  ", "ÇÃO"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_AccentVariantsCollapse(t *testing.T) {
	pairs := [][2]string{
		{"Instalação", "Instalacao"},
		{"Demolição de alvenaria", "Demolicao de alvenaria"},
		{"ÁREA ÚTIL", "AREA UTIL"},
	}
	for _, p := range pairs {
		if Normalize(p[0]) != Normalize(p[1]) {
			t.Errorf("expected %q and %q to share a key", p[0], p[1])
		}
	}
}
