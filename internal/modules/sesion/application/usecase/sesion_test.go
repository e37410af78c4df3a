package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/auth"
)

type authGatewayFalso struct {
	token       string
	loginErr    error
	registroErr error
	logins      int
	registros   int
}

func (g *authGatewayFalso) IniciarSesion(context.Context, port.Credenciales) (string, error) {
	g.logins++
	if g.loginErr != nil {
		return "", g.loginErr
	}
	return g.token, nil
}

func (g *authGatewayFalso) Registrar(context.Context, port.Registro) error {
	g.registros++
	return g.registroErr
}

type validadorFalso struct {
	claims *auth.Claims
	err    error
}

func (v *validadorFalso) Validate(string) (*auth.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func claimsDePrueba() *auth.Claims {
	claims := &auth.Claims{SessionID: "ses-001", Nombre: "María Quispe", Roles: []string{"MESERO"}}
	claims.RegisteredClaims.Subject = "42"
	return claims
}

func TestIniciarSesion(t *testing.T) {
	gateway := &authGatewayFalso{token: "jwt-emitido"}
	uc := NewSesionUseCase(gateway, &validadorFalso{claims: claimsDePrueba()})

	token, claims, err := uc.IniciarSesion(context.Background(), port.Credenciales{Nombre: "maria", Contrasena: "s3creta"})
	if err != nil {
		t.Fatalf("IniciarSesion: %v", err)
	}
	if token != "jwt-emitido" {
		t.Fatalf("token = %q", token)
	}
	if claims.UserID() != "42" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestIniciarSesionCredencialesIncompletas(t *testing.T) {
	gateway := &authGatewayFalso{token: "jwt"}
	uc := NewSesionUseCase(gateway, &validadorFalso{claims: claimsDePrueba()})

	casos := []port.Credenciales{
		{Nombre: "", Contrasena: "x"},
		{Nombre: "maria", Contrasena: "  "},
		{},
	}
	for _, credenciales := range casos {
		if _, _, err := uc.IniciarSesion(context.Background(), credenciales); !errors.Is(err, ErrCredencialesIncompletas) {
			t.Fatalf("credenciales %+v: err = %v", credenciales, err)
		}
	}
	if gateway.logins != 0 {
		t.Fatalf("el gateway no debe recibir credenciales incompletas: %d llamadas", gateway.logins)
	}
}

func TestIniciarSesionPropagaElRechazoDelBackend(t *testing.T) {
	rechazo := errors.New("credenciales inválidas")
	uc := NewSesionUseCase(&authGatewayFalso{loginErr: rechazo}, &validadorFalso{claims: claimsDePrueba()})
	if _, _, err := uc.IniciarSesion(context.Background(), port.Credenciales{Nombre: "maria", Contrasena: "x"}); !errors.Is(err, rechazo) {
		t.Fatalf("err = %v", err)
	}
}

func TestIniciarSesionRechazaTokenInusable(t *testing.T) {
	uc := NewSesionUseCase(&authGatewayFalso{token: "jwt-roto"}, &validadorFalso{err: auth.ErrInvalidToken})
	if _, _, err := uc.IniciarSesion(context.Background(), port.Credenciales{Nombre: "maria", Contrasena: "x"}); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v", err)
	}
}

func TestRegistrar(t *testing.T) {
	gateway := &authGatewayFalso{}
	uc := NewSesionUseCase(gateway, &validadorFalso{claims: claimsDePrueba()})
	registro := port.Registro{Nombre: "maria", Contrasena: "s3creta", Roles: []int{2}}
	if err := uc.Registrar(context.Background(), registro); err != nil {
		t.Fatalf("Registrar: %v", err)
	}
	if gateway.registros != 1 {
		t.Fatalf("registros = %d", gateway.registros)
	}
}

func TestRegistrarIncompletoNoTocaElGateway(t *testing.T) {
	gateway := &authGatewayFalso{}
	uc := NewSesionUseCase(gateway, &validadorFalso{claims: claimsDePrueba()})
	casos := []port.Registro{
		{Contrasena: "x", Roles: []int{2}},
		{Nombre: "maria", Roles: []int{2}},
		{Nombre: "maria", Contrasena: "x"},
	}
	for _, registro := range casos {
		if err := uc.Registrar(context.Background(), registro); !errors.Is(err, ErrRegistroIncompleto) {
			t.Fatalf("registro %+v: err = %v", registro, err)
		}
	}
	if gateway.registros != 0 {
		t.Fatalf("registros = %d", gateway.registros)
	}
}
