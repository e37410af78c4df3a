package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPlatilloInvalido = errors.New("platillo id must be positive")
	ErrCantidadMaxima   = errors.New("cantidad exceeds the configured cap")
)

// Linea es una línea del borrador: un platillo y su cantidad seleccionada.
// La cantidad siempre es ≥ 1; una línea que llega a 0 se elimina, nunca se guarda.
type Linea struct {
	IDPlatillo int
	Cantidad   int
}

// Borrador is the session-owned comanda draft: header fields plus the
// aggregated line items. It is not safe for concurrent use; the store
// serializes access per session.
type Borrador struct {
	// CodigoComanda queda vacío hasta que el backend asigna identidad; si se
	// edita una comanda existente, el código selecciona la ruta de update.
	CodigoComanda string

	ClienteID int
	MeseroID  int
	MesaID    int
	Estado    EstadoComanda
	Fecha     time.Time

	lineas []Linea
	indice map[int]int

	// maxCantidad acota la cantidad por platillo; 0 desactiva el límite.
	maxCantidad int
}

// Snapshot is an immutable copy of the draft taken for validation and
// submission, decoupled from further live mutation.
type Snapshot struct {
	CodigoComanda string
	ClienteID     int
	MeseroID      int
	MesaID        int
	Estado        EstadoComanda
	Fecha         time.Time
	Lineas        []Linea
}

func NewBorrador(maxCantidad int) *Borrador {
	b := &Borrador{maxCantidad: maxCantidad}
	b.Reiniciar()
	return b
}

// AgregarPlatillo creates a line with cantidad 1 for an unseen platillo, or
// increments the existing line by 1.
func (b *Borrador) AgregarPlatillo(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrPlatilloInvalido, id)
	}
	if pos, ok := b.indice[id]; ok {
		if b.maxCantidad > 0 && b.lineas[pos].Cantidad >= b.maxCantidad {
			return fmt.Errorf("%w: platillo %d", ErrCantidadMaxima, id)
		}
		b.lineas[pos].Cantidad++
		return nil
	}
	b.indice[id] = len(b.lineas)
	b.lineas = append(b.lineas, Linea{IDPlatillo: id, Cantidad: 1})
	return nil
}

// FijarCantidad sets the line to the given cantidad. A cantidad below 1
// removes the line entirely, preserving the no-zero-quantity invariant.
func (b *Borrador) FijarCantidad(id, cantidad int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrPlatilloInvalido, id)
	}
	if cantidad < 1 {
		b.Quitar(id)
		return nil
	}
	if b.maxCantidad > 0 && cantidad > b.maxCantidad {
		return fmt.Errorf("%w: platillo %d", ErrCantidadMaxima, id)
	}
	if pos, ok := b.indice[id]; ok {
		b.lineas[pos].Cantidad = cantidad
		return nil
	}
	b.indice[id] = len(b.lineas)
	b.lineas = append(b.lineas, Linea{IDPlatillo: id, Cantidad: cantidad})
	return nil
}

// Quitar removes the line unconditionally. Removing an absent platillo is a no-op.
func (b *Borrador) Quitar(id int) {
	pos, ok := b.indice[id]
	if !ok {
		return
	}
	b.lineas = append(b.lineas[:pos], b.lineas[pos+1:]...)
	delete(b.indice, id)
	for i := pos; i < len(b.lineas); i++ {
		b.indice[b.lineas[i].IDPlatillo] = i
	}
}

// Lineas returns a copy of the current lines in insertion order.
func (b *Borrador) Lineas() []Linea {
	return append([]Linea(nil), b.lineas...)
}

// Vacio reports whether the draft holds no line items.
func (b *Borrador) Vacio() bool {
	return len(b.lineas) == 0
}

// Snapshot produces an immutable copy of the current header and lines.
// Later mutation of the live draft never changes a previously taken snapshot.
func (b *Borrador) Snapshot() Snapshot {
	return Snapshot{
		CodigoComanda: b.CodigoComanda,
		ClienteID:     b.ClienteID,
		MeseroID:      b.MeseroID,
		MesaID:        b.MesaID,
		Estado:        b.Estado,
		Fecha:         b.Fecha,
		Lineas:        append([]Linea(nil), b.lineas...),
	}
}

// Reiniciar restores header defaults (estado Pendiente, fecha = today) and
// clears every line.
func (b *Borrador) Reiniciar() {
	b.CodigoComanda = ""
	b.ClienteID = 0
	b.MeseroID = 0
	b.MesaID = 0
	b.Estado = EstadoPendiente
	b.Fecha = time.Now().UTC().Truncate(24 * time.Hour)
	b.lineas = nil
	b.indice = make(map[int]int)
}
