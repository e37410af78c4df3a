package domain

import (
	"fmt"
	"strings"
)

// Infraccion describe un campo fiscal rechazado.
type Infraccion struct {
	Campo   string
	Detalle string
}

func (i Infraccion) String() string {
	return fmt.Sprintf("%s: %s", i.Campo, i.Detalle)
}

func soloDigitos(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidarDatos checks the receptor fields for the chosen document type. The
// branches never mix: a boleta ignores RUC fields and a factura ignores DNI
// fields, each validating only its own.
func ValidarDatos(tipo TipoComprobante, datos DatosCliente) []Infraccion {
	var infracciones []Infraccion

	switch tipo {
	case TipoBoleta:
		dni := strings.TrimSpace(datos.DNI)
		if len(dni) != 8 || !soloDigitos(dni) {
			infracciones = append(infracciones, Infraccion{Campo: "dni", Detalle: "el DNI debe tener exactamente 8 dígitos"})
		}
		if strings.TrimSpace(datos.Nombre) == "" {
			infracciones = append(infracciones, Infraccion{Campo: "nombre", Detalle: "el nombre del cliente es obligatorio"})
		}
	case TipoFactura:
		ruc := strings.TrimSpace(datos.RUC)
		if len(ruc) != 11 || !soloDigitos(ruc) {
			infracciones = append(infracciones, Infraccion{Campo: "ruc", Detalle: "el RUC debe tener exactamente 11 dígitos"})
		}
		if strings.TrimSpace(datos.RazonSocial) == "" {
			infracciones = append(infracciones, Infraccion{Campo: "razonSocial", Detalle: "la razón social es obligatoria"})
		}
		if strings.TrimSpace(datos.Direccion) == "" {
			infracciones = append(infracciones, Infraccion{Campo: "direccion", Detalle: "la dirección es obligatoria"})
		}
	default:
		infracciones = append(infracciones, Infraccion{Campo: "tipo", Detalle: "el tipo debe ser BOLETA o FACTURA"})
	}

	return infracciones
}
