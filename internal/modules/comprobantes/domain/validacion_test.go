package domain

import "testing"

func datosBoleta() DatosCliente {
	return DatosCliente{DNI: "45871236", Nombre: "María Quispe"}
}

func datosFactura() DatosCliente {
	return DatosCliente{
		RUC:         "20512345678",
		RazonSocial: "Inversiones El Fogón SAC",
		Direccion:   "Av. Grau 1520, Lima",
	}
}

func TestValidarDatosBoletaValida(t *testing.T) {
	if inf := ValidarDatos(TipoBoleta, datosBoleta()); len(inf) != 0 {
		t.Fatalf("boleta válida produjo infracciones: %v", inf)
	}
}

func TestValidarDatosFacturaValida(t *testing.T) {
	if inf := ValidarDatos(TipoFactura, datosFactura()); len(inf) != 0 {
		t.Fatalf("factura válida produjo infracciones: %v", inf)
	}
}

func TestValidarDatosRechazos(t *testing.T) {
	casos := []struct {
		nombre string
		tipo   TipoComprobante
		mutar  func(*DatosCliente)
		campo  string
	}{
		{"dni corto", TipoBoleta, func(d *DatosCliente) { d.DNI = "4587123" }, "dni"},
		{"dni largo", TipoBoleta, func(d *DatosCliente) { d.DNI = "458712361" }, "dni"},
		{"dni con letras", TipoBoleta, func(d *DatosCliente) { d.DNI = "4587123A" }, "dni"},
		{"dni vacío", TipoBoleta, func(d *DatosCliente) { d.DNI = "" }, "dni"},
		{"nombre en blanco", TipoBoleta, func(d *DatosCliente) { d.Nombre = "   " }, "nombre"},
		{"ruc corto", TipoFactura, func(d *DatosCliente) { d.RUC = "2051234567" }, "ruc"},
		{"ruc con letras", TipoFactura, func(d *DatosCliente) { d.RUC = "2051234567X" }, "ruc"},
		{"razón social vacía", TipoFactura, func(d *DatosCliente) { d.RazonSocial = "" }, "razonSocial"},
		{"dirección vacía", TipoFactura, func(d *DatosCliente) { d.Direccion = "" }, "direccion"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			var datos DatosCliente
			if c.tipo == TipoBoleta {
				datos = datosBoleta()
			} else {
				datos = datosFactura()
			}
			c.mutar(&datos)
			inf := ValidarDatos(c.tipo, datos)
			if len(inf) == 0 {
				t.Fatalf("esperaba infracción en %q", c.campo)
			}
			encontrado := false
			for _, i := range inf {
				if i.Campo == c.campo {
					encontrado = true
				}
			}
			if !encontrado {
				t.Fatalf("esperaba infracción sobre %q, obtuve %v", c.campo, inf)
			}
		})
	}
}

func TestValidarDatosIgnoraCamposDelOtroTipo(t *testing.T) {
	datos := datosBoleta()
	datos.RUC = "mal"
	datos.RazonSocial = ""
	if inf := ValidarDatos(TipoBoleta, datos); len(inf) != 0 {
		t.Fatalf("boleta no debe validar campos de factura: %v", inf)
	}

	datos = datosFactura()
	datos.DNI = "corto"
	if inf := ValidarDatos(TipoFactura, datos); len(inf) != 0 {
		t.Fatalf("factura no debe validar campos de boleta: %v", inf)
	}
}

func TestValidarDatosTipoDesconocido(t *testing.T) {
	inf := ValidarDatos(TipoComprobante("NOTA"), datosBoleta())
	if len(inf) != 1 || inf[0].Campo != "tipo" {
		t.Fatalf("tipo desconocido: esperaba infracción sobre tipo, obtuve %v", inf)
	}
}
