package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
)

type coleccion[T any] struct {
	estado      domain.EstadoRecurso
	items       []T
	actualizado time.Time
}

// Cache owns the in-memory reference collections (platillos, mesas, clientes,
// meseros). Refrescar fetches all of them in parallel; a collection that fails
// stays Fallido with its error while the others still load, and the caller may
// re-invoke Refrescar to retry. Lookups never touch the network.
type Cache struct {
	fetcher port.CatalogoFetcher

	mu       sync.RWMutex
	platillo coleccion[domain.Platillo]
	mesa     coleccion[domain.Mesa]
	cliente  coleccion[domain.Usuario]
	mesero   coleccion[domain.Usuario]

	platilloPorID map[int]domain.Platillo
	mesaPorID     map[int]domain.Mesa
	clientePorID  map[int]domain.Usuario
	meseroPorID   map[int]domain.Usuario
}

func NewCache(fetcher port.CatalogoFetcher) *Cache {
	inicial := domain.EstadoRecurso{Fase: domain.RecursoNoCargado}
	return &Cache{
		fetcher:       fetcher,
		platillo:      coleccion[domain.Platillo]{estado: inicial},
		mesa:          coleccion[domain.Mesa]{estado: inicial},
		cliente:       coleccion[domain.Usuario]{estado: inicial},
		mesero:        coleccion[domain.Usuario]{estado: inicial},
		platilloPorID: make(map[int]domain.Platillo),
		mesaPorID:     make(map[int]domain.Mesa),
		clientePorID:  make(map[int]domain.Usuario),
		meseroPorID:   make(map[int]domain.Usuario),
	}
}

// Refrescar reloads every reference collection in parallel. The returned error
// joins the per-collection failures; partial data remains usable.
func (c *Cache) Refrescar(ctx context.Context, token string) error {
	c.marcarCargando()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var fallos []error

	registrar := func(nombre string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			fallos = append(fallos, fmt.Errorf("%s: %w", nombre, err))
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		items, err := c.fetcher.ListarPlatillos(ctx, token)
		c.aplicarPlatillos(items, err)
		registrar("platillos", err)
	}()
	go func() {
		defer wg.Done()
		items, err := c.fetcher.ListarMesas(ctx, token)
		c.aplicarMesas(items, err)
		registrar("mesas", err)
	}()
	go func() {
		defer wg.Done()
		items, err := c.fetcher.ListarClientes(ctx, token)
		c.aplicarClientes(items, err)
		registrar("clientes", err)
	}()
	go func() {
		defer wg.Done()
		items, err := c.fetcher.ListarMeseros(ctx, token)
		c.aplicarMeseros(items, err)
		registrar("meseros", err)
	}()
	wg.Wait()

	if len(fallos) > 0 {
		slog.Warn("catalogo refresh incomplete", slog.Int("failures", len(fallos)))
		return errors.Join(fallos...)
	}
	slog.Info("catalogo refreshed")
	return nil
}

func (c *Cache) marcarCargando() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.platillo.estado = domain.EstadoRecurso{Fase: domain.RecursoCargando}
	c.mesa.estado = domain.EstadoRecurso{Fase: domain.RecursoCargando}
	c.cliente.estado = domain.EstadoRecurso{Fase: domain.RecursoCargando}
	c.mesero.estado = domain.EstadoRecurso{Fase: domain.RecursoCargando}
}

func (c *Cache) aplicarPlatillos(items []domain.Platillo, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.platillo.estado = domain.EstadoRecurso{Fase: domain.RecursoFallido, Err: err}
		return
	}
	c.platillo = coleccion[domain.Platillo]{
		estado:      domain.EstadoRecurso{Fase: domain.RecursoCargado},
		items:       items,
		actualizado: time.Now().UTC(),
	}
	c.platilloPorID = make(map[int]domain.Platillo, len(items))
	for _, p := range items {
		c.platilloPorID[p.ID] = p
	}
}

func (c *Cache) aplicarMesas(items []domain.Mesa, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.mesa.estado = domain.EstadoRecurso{Fase: domain.RecursoFallido, Err: err}
		return
	}
	c.mesa = coleccion[domain.Mesa]{
		estado:      domain.EstadoRecurso{Fase: domain.RecursoCargado},
		items:       items,
		actualizado: time.Now().UTC(),
	}
	c.mesaPorID = make(map[int]domain.Mesa, len(items))
	for _, m := range items {
		c.mesaPorID[m.ID] = m
	}
}

func (c *Cache) aplicarClientes(items []domain.Usuario, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.cliente.estado = domain.EstadoRecurso{Fase: domain.RecursoFallido, Err: err}
		return
	}
	c.cliente = coleccion[domain.Usuario]{
		estado:      domain.EstadoRecurso{Fase: domain.RecursoCargado},
		items:       items,
		actualizado: time.Now().UTC(),
	}
	c.clientePorID = make(map[int]domain.Usuario, len(items))
	for _, u := range items {
		c.clientePorID[u.ID] = u
	}
}

func (c *Cache) aplicarMeseros(items []domain.Usuario, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.mesero.estado = domain.EstadoRecurso{Fase: domain.RecursoFallido, Err: err}
		return
	}
	c.mesero = coleccion[domain.Usuario]{
		estado:      domain.EstadoRecurso{Fase: domain.RecursoCargado},
		items:       items,
		actualizado: time.Now().UTC(),
	}
	c.meseroPorID = make(map[int]domain.Usuario, len(items))
	for _, u := range items {
		c.meseroPorID[u.ID] = u
	}
}

// Invalidar marks a collection as stale after a backend change event so the
// next page load refetches it. Loaded data keeps serving lookups meanwhile.
func (c *Cache) Invalidar(entidad string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(entidad)) {
	case "platillos":
		c.platillo.estado = domain.EstadoRecurso{Fase: domain.RecursoNoCargado}
	case "mesas":
		c.mesa.estado = domain.EstadoRecurso{Fase: domain.RecursoNoCargado}
	case "clientes":
		c.cliente.estado = domain.EstadoRecurso{Fase: domain.RecursoNoCargado}
	case "meseros":
		c.mesero.estado = domain.EstadoRecurso{Fase: domain.RecursoNoCargado}
	default:
		slog.Debug("catalogo invalidation ignored", slog.String("entity", entidad))
	}
}

// Platillo resolves a dish by id in O(1).
func (c *Cache) Platillo(id int) (domain.Platillo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.platilloPorID[id]
	return p, ok
}

// Mesa resolves a table by id in O(1).
func (c *Cache) Mesa(id int) (domain.Mesa, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.mesaPorID[id]
	return m, ok
}

// Cliente resolves a customer by id in O(1).
func (c *Cache) Cliente(id int) (domain.Usuario, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.clientePorID[id]
	return u, ok
}

// Mesero resolves a staff member by id in O(1).
func (c *Cache) Mesero(id int) (domain.Usuario, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.meseroPorID[id]
	return u, ok
}

// Platillos returns a copy of the dish collection.
func (c *Cache) Platillos() []domain.Platillo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Platillo(nil), c.platillo.items...)
}

// Mesas returns a copy of the table collection.
func (c *Cache) Mesas() []domain.Mesa {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Mesa(nil), c.mesa.items...)
}

// MesasDisponibles returns only the tables a new comanda may reference.
func (c *Cache) MesasDisponibles() []domain.Mesa {
	c.mu.RLock()
	defer c.mu.RUnlock()
	disponibles := make([]domain.Mesa, 0, len(c.mesa.items))
	for _, m := range c.mesa.items {
		if m.Disponible() {
			disponibles = append(disponibles, m)
		}
	}
	return disponibles
}

// Clientes returns a copy of the customer collection.
func (c *Cache) Clientes() []domain.Usuario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Usuario(nil), c.cliente.items...)
}

// Meseros returns a copy of the staff collection.
func (c *Cache) Meseros() []domain.Usuario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Usuario(nil), c.mesero.items...)
}

// Estados reports the loading phase of every collection, keyed by entity name.
func (c *Cache) Estados() map[string]domain.EstadoRecurso {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]domain.EstadoRecurso{
		"platillos": c.platillo.estado,
		"mesas":     c.mesa.estado,
		"clientes":  c.cliente.estado,
		"meseros":   c.mesero.estado,
	}
}
