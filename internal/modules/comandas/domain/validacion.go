package domain

import (
	"fmt"

	catalogo "github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
)

// Infraccion describe una regla incumplida por un snapshot del borrador.
type Infraccion struct {
	Campo   string
	Detalle string
}

func (i Infraccion) String() string {
	return fmt.Sprintf("%s: %s", i.Campo, i.Detalle)
}

// Resolutor resuelve referencias del borrador contra el catálogo cargado.
// Lo satisface el cache del módulo catalogo.
type Resolutor interface {
	Platillo(id int) (catalogo.Platillo, bool)
	Mesa(id int) (catalogo.Mesa, bool)
	Cliente(id int) (catalogo.Usuario, bool)
	Mesero(id int) (catalogo.Usuario, bool)
}

// ValidarSnapshot checks draft completeness before submission. It is pure and
// synchronous: no network access, safe to re-run on every keystroke. A nil
// result means the snapshot may be submitted.
func ValidarSnapshot(s Snapshot, resolutor Resolutor) []Infraccion {
	var infracciones []Infraccion

	if s.ClienteID <= 0 {
		infracciones = append(infracciones, Infraccion{Campo: "clienteId", Detalle: "selecciona un cliente"})
	} else if _, ok := resolutor.Cliente(s.ClienteID); !ok {
		infracciones = append(infracciones, Infraccion{Campo: "clienteId", Detalle: fmt.Sprintf("cliente %d no existe en el catálogo", s.ClienteID)})
	}

	if s.MeseroID <= 0 {
		infracciones = append(infracciones, Infraccion{Campo: "meseroId", Detalle: "selecciona un mesero"})
	} else if _, ok := resolutor.Mesero(s.MeseroID); !ok {
		infracciones = append(infracciones, Infraccion{Campo: "meseroId", Detalle: fmt.Sprintf("mesero %d no existe en el catálogo", s.MeseroID)})
	}

	if s.MesaID <= 0 {
		infracciones = append(infracciones, Infraccion{Campo: "mesaId", Detalle: "selecciona una mesa"})
	} else if mesa, ok := resolutor.Mesa(s.MesaID); !ok {
		infracciones = append(infracciones, Infraccion{Campo: "mesaId", Detalle: fmt.Sprintf("mesa %d no existe en el catálogo", s.MesaID)})
	} else if !mesa.Disponible() {
		infracciones = append(infracciones, Infraccion{Campo: "mesaId", Detalle: fmt.Sprintf("mesa %d no está disponible", s.MesaID)})
	}

	if !s.Estado.EsCanonico() {
		infracciones = append(infracciones, Infraccion{Campo: "estado", Detalle: fmt.Sprintf("estado %q fuera del conjunto permitido", string(s.Estado))})
	}

	if len(s.Lineas) == 0 {
		infracciones = append(infracciones, Infraccion{Campo: "platillos", Detalle: "selecciona al menos un platillo"})
	}
	for _, linea := range s.Lineas {
		if linea.Cantidad < 1 {
			infracciones = append(infracciones, Infraccion{Campo: "cantidades", Detalle: fmt.Sprintf("cantidad inválida para platillo %d", linea.IDPlatillo)})
		}
		platillo, ok := resolutor.Platillo(linea.IDPlatillo)
		if !ok {
			infracciones = append(infracciones, Infraccion{Campo: "platillos", Detalle: fmt.Sprintf("platillo %d no existe en el catálogo", linea.IDPlatillo)})
			continue
		}
		if platillo.Precio.IsNegative() {
			infracciones = append(infracciones, Infraccion{Campo: "platillos", Detalle: fmt.Sprintf("platillo %d tiene precio negativo", linea.IDPlatillo)})
		}
	}

	return infracciones
}
