package domain

import "testing"

func TestNormalizeEstadoMesa(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada any
		quiere  EstadoMesa
	}{
		{"canónico", "Disponible", EstadoMesaDisponible},
		{"minúsculas", "ocupada", EstadoMesaOcupada},
		{"mayúsculas", "RESERVADA", EstadoMesaReservada},
		{"con espacios", "  disponible  ", EstadoMesaDisponible},
		{"desconocido se conserva", "Fuera de servicio", EstadoMesa("Fuera de servicio")},
		{"vacío", "   ", EstadoMesaDesconocido},
		{"no string", 7, EstadoMesaDesconocido},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			if got := NormalizeEstadoMesa(c.entrada); got != c.quiere {
				t.Fatalf("NormalizeEstadoMesa(%v) = %q, esperaba %q", c.entrada, got, c.quiere)
			}
		})
	}
}

func TestNormalizeMesa(t *testing.T) {
	mesa, ok := NormalizeMesa(map[string]any{
		"idMesa":    float64(5),
		"numero":    float64(12),
		"capacidad": float64(4),
		"estado":    "disponible",
	})
	if !ok {
		t.Fatal("mesa válida rechazada")
	}
	if mesa.ID != 5 || mesa.Numero != 12 || mesa.Capacidad != 4 {
		t.Fatalf("mesa mal normalizada: %+v", mesa)
	}
	if !mesa.Disponible() {
		t.Fatal("mesa disponible reportada como no disponible")
	}
}

func TestNormalizeMesaSinID(t *testing.T) {
	if _, ok := NormalizeMesa(map[string]any{"numero": float64(3)}); ok {
		t.Fatal("mesa sin id aceptada")
	}
}

func TestNormalizeMesasIDAlterno(t *testing.T) {
	mesas := NormalizeMesas([]any{
		map[string]any{"id": float64(8), "estado": "Ocupada"},
		"no es un mapa",
		map[string]any{"estado": "Disponible"},
	})
	if len(mesas) != 1 || mesas[0].ID != 8 {
		t.Fatalf("esperaba una mesa con id 8: %+v", mesas)
	}
	if mesas[0].Disponible() {
		t.Fatal("mesa ocupada reportada como disponible")
	}
}

func TestNormalizePlatillo(t *testing.T) {
	platillo, ok := NormalizePlatillo(map[string]any{
		"idPlatillo":     float64(7),
		"codigoPlatillo": "PLT-7",
		"nombre":         "Papa Rellena",
		"precio":         "12.50",
	})
	if !ok {
		t.Fatal("platillo válido rechazado")
	}
	if platillo.ID != 7 || platillo.Nombre != "Papa Rellena" {
		t.Fatalf("platillo mal normalizado: %+v", platillo)
	}
	if platillo.Precio.StringFixed(2) != "12.50" {
		t.Fatalf("precio = %s", platillo.Precio.StringFixed(2))
	}
}

func TestNormalizePlatilloPrecioNegativo(t *testing.T) {
	if _, ok := NormalizePlatillo(map[string]any{"idPlatillo": float64(7), "precio": "-1.00"}); ok {
		t.Fatal("precio negativo aceptado")
	}
}

func TestNormalizePlatilloPrecioNumerico(t *testing.T) {
	platillo, ok := NormalizePlatillo(map[string]any{"id": float64(3), "precio": 28.0})
	if !ok {
		t.Fatal("platillo con precio float rechazado")
	}
	if platillo.Precio.StringFixed(2) != "28.00" {
		t.Fatalf("precio = %s", platillo.Precio.StringFixed(2))
	}
}

func TestNormalizeUsuario(t *testing.T) {
	usuario, ok := NormalizeUsuario(map[string]any{
		"idUsuario": float64(2),
		"nombre":    "Luis Ramos",
		"roles":     []any{"MESERO"},
	})
	if !ok {
		t.Fatal("usuario válido rechazado")
	}
	if usuario.ID != 2 || len(usuario.Roles) != 1 || usuario.Roles[0] != "MESERO" {
		t.Fatalf("usuario mal normalizado: %+v", usuario)
	}
}

func TestNormalizeUsuariosDescartaSinID(t *testing.T) {
	usuarios := NormalizeUsuarios([]any{
		map[string]any{"id": float64(1), "nombre": "Ana"},
		map[string]any{"nombre": "sin id"},
	})
	if len(usuarios) != 1 || usuarios[0].ID != 1 {
		t.Fatalf("esperaba solo el usuario 1: %+v", usuarios)
	}
}
