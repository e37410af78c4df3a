package domain

// FaseRecurso is the loading phase of a cached reference collection. Modelling
// the phase as a single enumeration rules out impossible combinations of
// loading/error/loaded flags.
type FaseRecurso string

const (
	RecursoNoCargado FaseRecurso = "no_cargado"
	RecursoCargando  FaseRecurso = "cargando"
	RecursoCargado   FaseRecurso = "cargado"
	RecursoFallido   FaseRecurso = "fallido"
)

// EstadoRecurso pairs the phase with the failure that produced it, if any.
type EstadoRecurso struct {
	Fase FaseRecurso
	Err  error
}

// Cargado reports whether the collection holds usable data.
func (e EstadoRecurso) Cargado() bool {
	return e.Fase == RecursoCargado
}
