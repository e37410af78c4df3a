package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogo "github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
)

type gatewayFalso struct {
	crearCalls      int
	actualizarCalls int
	ultimoPayload   domain.Payload
	comanda         *domain.Comanda
	err             error
}

func (g *gatewayFalso) CrearComanda(_ context.Context, _ string, payload domain.Payload) (*domain.Comanda, error) {
	g.crearCalls++
	g.ultimoPayload = payload
	return g.comanda, g.err
}

func (g *gatewayFalso) ListarComandas(context.Context, string) ([]domain.Comanda, error) {
	return nil, nil
}

func (g *gatewayFalso) ObtenerComanda(context.Context, string, string) (*domain.Comanda, error) {
	return g.comanda, g.err
}

func (g *gatewayFalso) ActualizarEstado(_ context.Context, _ string, codigo string, estado domain.EstadoComanda) (*domain.Comanda, error) {
	g.actualizarCalls++
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Comanda{Codigo: codigo, Estado: estado}, nil
}

type notificadorFalso struct {
	acciones []string
}

func (n *notificadorFalso) ComandaCambiada(accion string, _ *domain.Comanda) {
	n.acciones = append(n.acciones, accion)
}

type resolutorDePrueba struct{}

func (resolutorDePrueba) Platillo(id int) (catalogo.Platillo, bool) {
	if id == 7 {
		return catalogo.Platillo{ID: 7, Nombre: "Papa Rellena", Precio: decimal.RequireFromString("12.50")}, true
	}
	return catalogo.Platillo{}, false
}

func (resolutorDePrueba) Mesa(id int) (catalogo.Mesa, bool) {
	if id == 5 {
		return catalogo.Mesa{ID: 5, Estado: catalogo.EstadoMesaDisponible}, true
	}
	return catalogo.Mesa{}, false
}

func (resolutorDePrueba) Cliente(id int) (catalogo.Usuario, bool) {
	return catalogo.Usuario{ID: id}, id == 1
}

func (resolutorDePrueba) Mesero(id int) (catalogo.Usuario, bool) {
	return catalogo.Usuario{ID: id}, id == 2
}

func borradorCompleto(t *testing.T, almacen *Almacen, sessionID string) {
	t.Helper()
	err := almacen.Mutar(sessionID, func(b *domain.Borrador) error {
		b.ClienteID = 1
		b.MeseroID = 2
		b.MesaID = 5
		_ = b.AgregarPlatillo(7)
		return b.AgregarPlatillo(7)
	})
	require.NoError(t, err)
}

func TestEjecutarBorradorInvalidoNoLlamaAlGateway(t *testing.T) {
	almacen := NewAlmacen(0)
	gateway := &gatewayFalso{}
	uc := NewEnviarComandaUseCase(almacen, gateway, resolutorDePrueba{}, nil)

	resultado, err := uc.Ejecutar(context.Background(), "tok", "s")

	require.ErrorIs(t, err, ErrBorradorInvalido)
	assert.Equal(t, FaseFallida, resultado.Fase)
	assert.NotEmpty(t, resultado.Infracciones)
	assert.Zero(t, gateway.crearCalls, "an invalid draft must never reach the backend")
	assert.Zero(t, gateway.actualizarCalls)

	// El borrador queda desbloqueado para corregir y reintentar.
	require.NoError(t, almacen.Mutar("s", func(b *domain.Borrador) error { return b.AgregarPlatillo(7) }))
}

func TestEjecutarCreaComandaYReiniciaBorrador(t *testing.T) {
	almacen := NewAlmacen(0)
	gateway := &gatewayFalso{comanda: &domain.Comanda{Codigo: "CMD-9", Estado: domain.EstadoPendiente}}
	notificador := &notificadorFalso{}
	uc := NewEnviarComandaUseCase(almacen, gateway, resolutorDePrueba{}, notificador)
	borradorCompleto(t, almacen, "s")

	resultado, err := uc.Ejecutar(context.Background(), "tok", "s")

	require.NoError(t, err)
	assert.Equal(t, FaseCompletada, resultado.Fase)
	assert.Equal(t, "CMD-9", resultado.Comanda.Codigo)
	assert.Equal(t, "25.00", resultado.Total.StringFixed(2))

	assert.Equal(t, 1, gateway.crearCalls)
	assert.Equal(t, "7", gateway.ultimoPayload.IDsPlatillo)
	assert.Equal(t, "2", gateway.ultimoPayload.Cantidades)
	assert.Equal(t, []string{"created"}, notificador.acciones)

	_, snap, _ := almacen.Consultar("s")
	assert.Empty(t, snap.Lineas, "draft should reset after a successful create")
}

func TestEjecutarFalloDelBackendConservaBorrador(t *testing.T) {
	almacen := NewAlmacen(0)
	gateway := &gatewayFalso{err: errors.New("backend caído")}
	uc := NewEnviarComandaUseCase(almacen, gateway, resolutorDePrueba{}, nil)
	borradorCompleto(t, almacen, "s")

	resultado, err := uc.Ejecutar(context.Background(), "tok", "s")

	require.Error(t, err)
	assert.Equal(t, FaseFallida, resultado.Fase)

	_, snap, _ := almacen.Consultar("s")
	assert.Len(t, snap.Lineas, 1, "draft must survive a backend failure")
	assert.Equal(t, 2, snap.Lineas[0].Cantidad)
}

func TestEjecutarConCodigoActualizaEstado(t *testing.T) {
	almacen := NewAlmacen(0)
	gateway := &gatewayFalso{}
	notificador := &notificadorFalso{}
	uc := NewEnviarComandaUseCase(almacen, gateway, resolutorDePrueba{}, notificador)

	err := almacen.Mutar("s", func(b *domain.Borrador) error {
		b.CodigoComanda = "CMD-4"
		b.ClienteID = 1
		b.MeseroID = 2
		b.MesaID = 5
		b.Estado = domain.EstadoPreparando
		return b.AgregarPlatillo(7)
	})
	require.NoError(t, err)

	resultado, err := uc.Ejecutar(context.Background(), "tok", "s")

	require.NoError(t, err)
	assert.Equal(t, 1, gateway.actualizarCalls)
	assert.Zero(t, gateway.crearCalls)
	assert.Equal(t, "CMD-4", resultado.Comanda.Codigo)
	assert.Equal(t, []string{"updated"}, notificador.acciones)
}

func TestEjecutarEnvioConcurrenteRechazado(t *testing.T) {
	almacen := NewAlmacen(0)
	uc := NewEnviarComandaUseCase(almacen, &gatewayFalso{}, resolutorDePrueba{}, nil)

	_, err := almacen.ComenzarEnvio("s")
	require.NoError(t, err)

	_, err = uc.Ejecutar(context.Background(), "tok", "s")
	require.ErrorIs(t, err, ErrEnvioEnCurso)
}
