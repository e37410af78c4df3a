package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	catalogo "github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
)

type resolutorFijo struct {
	platillos map[int]catalogo.Platillo
	mesas     map[int]catalogo.Mesa
	clientes  map[int]catalogo.Usuario
	meseros   map[int]catalogo.Usuario
}

func (r *resolutorFijo) Platillo(id int) (catalogo.Platillo, bool) {
	p, ok := r.platillos[id]
	return p, ok
}

func (r *resolutorFijo) Mesa(id int) (catalogo.Mesa, bool) {
	m, ok := r.mesas[id]
	return m, ok
}

func (r *resolutorFijo) Cliente(id int) (catalogo.Usuario, bool) {
	u, ok := r.clientes[id]
	return u, ok
}

func (r *resolutorFijo) Mesero(id int) (catalogo.Usuario, bool) {
	u, ok := r.meseros[id]
	return u, ok
}

func resolutorCompleto() *resolutorFijo {
	return &resolutorFijo{
		platillos: map[int]catalogo.Platillo{
			7: {ID: 7, Nombre: "Papa Rellena", Precio: decimal.RequireFromString("12.50")},
			3: {ID: 3, Nombre: "Lomo Saltado", Precio: decimal.RequireFromString("28.00")},
		},
		mesas: map[int]catalogo.Mesa{
			5: {ID: 5, Numero: 5, Estado: catalogo.EstadoMesaDisponible},
			6: {ID: 6, Numero: 6, Estado: catalogo.EstadoMesaOcupada},
		},
		clientes: map[int]catalogo.Usuario{1: {ID: 1, Nombre: "Ana"}},
		meseros:  map[int]catalogo.Usuario{2: {ID: 2, Nombre: "Luis"}},
	}
}

func snapshotValido() Snapshot {
	return Snapshot{
		ClienteID: 1,
		MeseroID:  2,
		MesaID:    5,
		Estado:    EstadoPendiente,
		Lineas:    []Linea{{IDPlatillo: 7, Cantidad: 2}},
	}
}

func TestValidarSnapshotAceptaBorradorCompleto(t *testing.T) {
	infracciones := ValidarSnapshot(snapshotValido(), resolutorCompleto())
	if len(infracciones) != 0 {
		t.Fatalf("expected no infracciones, got %v", infracciones)
	}
}

func TestValidarSnapshotRechazaCasos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Snapshot)
		campo  string
	}{
		{"sin cliente", func(s *Snapshot) { s.ClienteID = 0 }, "clienteId"},
		{"cliente inexistente", func(s *Snapshot) { s.ClienteID = 99 }, "clienteId"},
		{"sin mesero", func(s *Snapshot) { s.MeseroID = 0 }, "meseroId"},
		{"sin mesa", func(s *Snapshot) { s.MesaID = 0 }, "mesaId"},
		{"mesa ocupada", func(s *Snapshot) { s.MesaID = 6 }, "mesaId"},
		{"estado fuera del conjunto", func(s *Snapshot) { s.Estado = "Volando" }, "estado"},
		{"sin lineas", func(s *Snapshot) { s.Lineas = nil }, "platillos"},
		{"platillo inexistente", func(s *Snapshot) { s.Lineas = []Linea{{IDPlatillo: 99, Cantidad: 1}} }, "platillos"},
		{"cantidad invalida", func(s *Snapshot) { s.Lineas = []Linea{{IDPlatillo: 7, Cantidad: 0}} }, "cantidades"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := snapshotValido()
			tc.mutate(&snap)
			infracciones := ValidarSnapshot(snap, resolutorCompleto())
			if len(infracciones) == 0 {
				t.Fatal("expected infracciones")
			}
			found := false
			for _, inf := range infracciones {
				if inf.Campo == tc.campo {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected infraccion for campo %q, got %v", tc.campo, infracciones)
			}
		})
	}
}

func TestValidarSnapshotAcumulaInfracciones(t *testing.T) {
	infracciones := ValidarSnapshot(Snapshot{Estado: EstadoPendiente}, resolutorCompleto())
	if len(infracciones) < 4 {
		t.Fatalf("expected at least 4 infracciones for an empty draft, got %d: %v", len(infracciones), infracciones)
	}
}
