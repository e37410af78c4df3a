package normalization

import "testing"

func TestAsInt(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada any
		quiere  int
	}{
		{"float64", float64(7), 7},
		{"int", 7, 7},
		{"int64", int64(7), 7},
		{"string numérica", " 42 ", 42},
		{"string no numérica", "siete", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			if got := AsInt(c.entrada); got != c.quiere {
				t.Fatalf("AsInt(%v) = %d, esperaba %d", c.entrada, got, c.quiere)
			}
		})
	}
}

func TestAsDecimalConservaPrecisionEnStrings(t *testing.T) {
	if got := AsDecimal("12.50").StringFixed(2); got != "12.50" {
		t.Fatalf("AsDecimal string = %s", got)
	}
	if got := AsDecimal(float64(28)).StringFixed(2); got != "28.00" {
		t.Fatalf("AsDecimal float = %s", got)
	}
	if !AsDecimal("no es dinero").IsZero() {
		t.Fatal("entrada inválida debe dar cero")
	}
	if !AsDecimal(nil).IsZero() {
		t.Fatal("nil debe dar cero")
	}
}

func TestAsString(t *testing.T) {
	if got := AsString("  hola  "); got != "hola" {
		t.Fatalf("AsString = %q", got)
	}
	if got := AsString(42); got != "" {
		t.Fatalf("AsString(int) = %q", got)
	}
}

func TestAsStringSlice(t *testing.T) {
	got := AsStringSlice([]any{" PLT-7 ", "", "PLT-3", 42})
	if len(got) != 2 || got[0] != "PLT-7" || got[1] != "PLT-3" {
		t.Fatalf("AsStringSlice = %v", got)
	}
	if AsStringSlice("no es slice") != nil {
		t.Fatal("entrada no slice debe dar nil")
	}
	if AsStringSlice([]any{"", 1}) != nil {
		t.Fatal("slice sin strings válidas debe dar nil")
	}
}

func TestMapFromPayload(t *testing.T) {
	directo := MapFromPayload(map[string]any{"codigo": "CMD-001"})
	if directo["codigo"] != "CMD-001" {
		t.Fatalf("mapa directo = %v", directo)
	}

	envuelto := MapFromPayload(map[string]any{"data": map[string]any{"codigo": "CMD-002"}})
	if envuelto["codigo"] != "CMD-002" {
		t.Fatalf("sobre data = %v", envuelto)
	}

	if MapFromPayload(nil) != nil || MapFromPayload("texto") != nil {
		t.Fatal("payloads no mapa deben dar nil")
	}
}
