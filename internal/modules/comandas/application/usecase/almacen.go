package usecase

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
)

var (
	ErrSesionVacia  = errors.New("missing session id")
	ErrEnvioEnCurso = errors.New("a submission is already in flight for this draft")
)

type entradaBorrador struct {
	id       string
	borrador *domain.Borrador
	enviando bool
}

// Almacen hands each authenticated session its own comanda draft. A draft is
// never shared across sessions and has no backend identity until a successful
// create. The mutex serializes every mutation; the enviando flag is the only
// concurrency guard during submission, mirroring a disabled submit button.
type Almacen struct {
	mu          sync.Mutex
	borradores  map[string]*entradaBorrador
	maxCantidad int
}

func NewAlmacen(maxCantidad int) *Almacen {
	return &Almacen{
		borradores:  make(map[string]*entradaBorrador),
		maxCantidad: maxCantidad,
	}
}

func (a *Almacen) entrada(sessionID string) *entradaBorrador {
	entry, ok := a.borradores[sessionID]
	if !ok {
		entry = &entradaBorrador{
			id:       uuid.NewString(),
			borrador: domain.NewBorrador(a.maxCantidad),
		}
		a.borradores[sessionID] = entry
		slog.Debug("borrador created", slog.String("sessionId", sessionID), slog.String("borradorId", entry.id))
	}
	return entry
}

// Mutar runs fn over the session draft under the store lock. Mutations are
// rejected while a submission for the same draft is in flight.
func (a *Almacen) Mutar(sessionID string, fn func(*domain.Borrador) error) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSesionVacia
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	entry := a.entrada(sessionID)
	if entry.enviando {
		return ErrEnvioEnCurso
	}
	return fn(entry.borrador)
}

// Consultar runs fn over an immutable snapshot of the session draft and
// returns the draft id alongside.
func (a *Almacen) Consultar(sessionID string) (string, domain.Snapshot, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", domain.Snapshot{}, ErrSesionVacia
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	entry := a.entrada(sessionID)
	return entry.id, entry.borrador.Snapshot(), nil
}

// ComenzarEnvio flags the draft as submitting and returns the snapshot to
// send. At most one submission is in flight per draft.
func (a *Almacen) ComenzarEnvio(sessionID string) (domain.Snapshot, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Snapshot{}, ErrSesionVacia
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	entry := a.entrada(sessionID)
	if entry.enviando {
		return domain.Snapshot{}, ErrEnvioEnCurso
	}
	entry.enviando = true
	return entry.borrador.Snapshot(), nil
}

// TerminarEnvio clears the in-flight flag. On success the draft resets to its
// defaults; on failure it stays intact so the user can correct and resubmit.
func (a *Almacen) TerminarEnvio(sessionID string, exito bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry, ok := a.borradores[sessionID]
	if !ok {
		return
	}
	entry.enviando = false
	if exito {
		entry.borrador.Reiniciar()
	}
}

// Descartar drops the session draft entirely, e.g. on logout.
func (a *Almacen) Descartar(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.borradores, sessionID)
}
