package domain

import "testing"

func TestBuildPayloadAplanaListasParalelas(t *testing.T) {
	snap := Snapshot{
		ClienteID: 1,
		MeseroID:  2,
		MesaID:    5,
		Estado:    EstadoPendiente,
		Lineas: []Linea{
			{IDPlatillo: 7, Cantidad: 2},
			{IDPlatillo: 3, Cantidad: 1},
		},
	}

	payload := BuildPayload(snap)

	if payload.IDsPlatillo != "7,3" {
		t.Fatalf("unexpected ids_platillo: %q", payload.IDsPlatillo)
	}
	if payload.Cantidades != "2,1" {
		t.Fatalf("unexpected cantidades: %q", payload.Cantidades)
	}
	if payload.Estado != "Pendiente" {
		t.Fatalf("unexpected estado: %q", payload.Estado)
	}
	if payload.ClienteID != 1 || payload.MeseroID != 2 || payload.MesaID != 5 {
		t.Fatalf("unexpected header ids: %+v", payload)
	}
}

func TestBuildPayloadBorradorVacio(t *testing.T) {
	payload := BuildPayload(Snapshot{})
	if payload.IDsPlatillo != "" || payload.Cantidades != "" {
		t.Fatalf("expected empty lists, got %q / %q", payload.IDsPlatillo, payload.Cantidades)
	}
}

func TestTotalSumaPrecioPorCantidad(t *testing.T) {
	snap := Snapshot{
		Lineas: []Linea{
			{IDPlatillo: 7, Cantidad: 2},
			{IDPlatillo: 3, Cantidad: 1},
		},
	}

	total := Total(snap, resolutorCompleto())

	// 12.50 x 2 + 28.00 x 1
	if got := total.StringFixed(2); got != "53.00" {
		t.Fatalf("unexpected total: %s", got)
	}
}

func TestTotalIgnoraPlatillosNoResolubles(t *testing.T) {
	snap := Snapshot{Lineas: []Linea{{IDPlatillo: 99, Cantidad: 3}}}
	if got := Total(snap, resolutorCompleto()).StringFixed(2); got != "0.00" {
		t.Fatalf("unexpected total: %s", got)
	}
}
