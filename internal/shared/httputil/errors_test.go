package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMap(t *testing.T) {
	errNoEncontrado := errors.New("no encontrado")
	errConflicto := errors.New("conflicto")
	mapper := NewErrorMapper().
		WithMapping(errNoEncontrado, http.StatusNotFound, "recurso no encontrado").
		WithMapping(errConflicto, http.StatusConflict, "operación en curso")

	casos := []struct {
		nombre  string
		err     error
		status  int
		message string
	}{
		{"sin error", nil, http.StatusOK, ""},
		{"mapeado", errNoEncontrado, http.StatusNotFound, "recurso no encontrado"},
		{"envuelto", fmt.Errorf("contexto: %w", errConflicto), http.StatusConflict, "operación en curso"},
		{"sin mapeo", errors.New("otra cosa"), http.StatusInternalServerError, "internal server error"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "request timeout"},
		{"cancelado", context.Canceled, http.StatusServiceUnavailable, "request cancelled"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			info := mapper.Map(c.err)
			if info.Status != c.status || info.Message != c.message {
				t.Fatalf("Map(%v) = %+v, esperaba %d %q", c.err, info, c.status, c.message)
			}
		})
	}
}

func TestMapDefaultPersonalizado(t *testing.T) {
	mapper := NewErrorMapper().WithDefault(http.StatusBadGateway, "backend no disponible")
	info := mapper.Map(errors.New("cualquier cosa"))
	if info.Status != http.StatusBadGateway || info.Message != "backend no disponible" {
		t.Fatalf("Map = %+v", info)
	}
}

func TestMapContextoGanaAlMapeo(t *testing.T) {
	mapper := NewErrorMapper().WithMapping(context.DeadlineExceeded, http.StatusTeapot, "nunca")
	info := mapper.Map(context.DeadlineExceeded)
	if info.Status != http.StatusGatewayTimeout {
		t.Fatalf("los errores de contexto deben mapearse primero: %+v", info)
	}
}
