package port

import "context"

// Credenciales es el cuerpo de POST /api/login.
type Credenciales struct {
	Nombre     string
	Contrasena string
}

// Registro es el cuerpo de POST /api/registro; Roles lleva los ids de rol.
type Registro struct {
	Nombre     string
	Contrasena string
	Roles      []int
}

// AuthGateway delega login y registro en el backend, que es quien emite el
// token de sesión.
type AuthGateway interface {
	IniciarSesion(ctx context.Context, credenciales Credenciales) (string, error)
	Registrar(ctx context.Context, registro Registro) error
}
