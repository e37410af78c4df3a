package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secretoDePrueba = "secreto-de-prueba"

func firmarToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString([]byte(secretoDePrueba))
	if err != nil {
		t.Fatalf("firmar token: %v", err)
	}
	return firmado
}

func claimsVigentes() Claims {
	return Claims{
		SessionID: "ses-001",
		Nombre:    "María Quispe",
		Roles:     []string{"MESERO"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestValidateTokenVigente(t *testing.T) {
	validator := NewJWTValidator(secretoDePrueba)
	claims, err := validator.Validate(firmarToken(t, claimsVigentes()))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID() != "42" || claims.SessionID != "ses-001" {
		t.Fatalf("claims mal parseados: %+v", claims)
	}
	if !claims.HasRole("mesero") {
		t.Fatal("HasRole debe ignorar mayúsculas")
	}
	if claims.HasRole("ADMIN") {
		t.Fatal("rol no presente aceptado")
	}
}

func TestValidateTokenVacio(t *testing.T) {
	validator := NewJWTValidator(secretoDePrueba)
	if _, err := validator.Validate("   "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("esperaba ErrMissingToken, obtuve %v", err)
	}
}

func TestValidateFirmaIncorrecta(t *testing.T) {
	otro := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsVigentes())
	firmado, err := otro.SignedString([]byte("otro-secreto"))
	if err != nil {
		t.Fatalf("firmar token: %v", err)
	}
	validator := NewJWTValidator(secretoDePrueba)
	if _, err := validator.Validate(firmado); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("esperaba ErrInvalidToken, obtuve %v", err)
	}
}

func TestValidateTokenExpirado(t *testing.T) {
	claims := claimsVigentes()
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	validator := NewJWTValidator(secretoDePrueba)
	if _, err := validator.Validate(firmarToken(t, claims)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("esperaba ErrInvalidToken, obtuve %v", err)
	}
}

func TestValidateSinSubject(t *testing.T) {
	claims := claimsVigentes()
	claims.RegisteredClaims.Subject = ""
	validator := NewJWTValidator(secretoDePrueba)
	if _, err := validator.Validate(firmarToken(t, claims)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("esperaba ErrInvalidToken, obtuve %v", err)
	}
}

func TestValidateDerivaSessionID(t *testing.T) {
	claims := claimsVigentes()
	claims.SessionID = ""
	claims.RegisteredClaims.ID = "jti-77"
	validator := NewJWTValidator(secretoDePrueba)
	out, err := validator.Validate(firmarToken(t, claims))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if out.SessionID != "jti-77" {
		t.Fatalf("SessionID = %q, esperaba el jti", out.SessionID)
	}
}

func TestExtractTokenPrioridades(t *testing.T) {
	conCookie := httptest.NewRequest("GET", "/api/catalogo?token=por-query", nil)
	conCookie.AddCookie(&http.Cookie{Name: "auth_token", Value: "por-cookie"})
	conCookie.Header.Set("Authorization", "Bearer por-header")
	if got := ExtractToken(conCookie, "auth_token", "token"); got != "por-cookie" {
		t.Fatalf("cookie debe ganar: %q", got)
	}

	conHeader := httptest.NewRequest("GET", "/api/catalogo?token=por-query", nil)
	conHeader.Header.Set("Authorization", "Bearer por-header")
	if got := ExtractToken(conHeader, "auth_token", "token"); got != "por-header" {
		t.Fatalf("header debe ganar sin cookie: %q", got)
	}

	soloQuery := httptest.NewRequest("GET", "/ws/comandas?token=por-query", nil)
	if got := ExtractToken(soloQuery, "auth_token", "token"); got != "por-query" {
		t.Fatalf("query como último recurso: %q", got)
	}
}
