// Package props provides the generic property container mapping graph
// elements to values. Traversals use it to record discovery numbers,
// levels, and low-link values; callers can share one container across
// runs and reset it wholesale.
//
// Keys are element ids (Vertex.ID / Arc.ID). A Map hands back its
// default value for unset keys, so "unvisited" never needs a separate
// sentinel.
package props

// Map associates element ids with values of type T, falling back to a
// default for ids never set. The zero Map is not ready for use; call
// New.
type Map[T any] struct {
	def    T
	values map[uint64]T
}

// New returns an empty Map whose unset keys read as def.
func New[T any](def T) *Map[T] {
	return &Map[T]{def: def, values: make(map[uint64]T)}
}

// Get returns the value recorded for id, or the default.
func (m *Map[T]) Get(id uint64) T {
	if v, ok := m.values[id]; ok {
		return v
	}

	return m.def
}

// Set records v for id.
func (m *Map[T]) Set(id uint64, v T) { m.values[id] = v }

// Has reports whether id has an explicitly recorded value.
func (m *Map[T]) Has(id uint64) bool {
	_, ok := m.values[id]

	return ok
}

// Reset removes id's recorded value, restoring the default.
func (m *Map[T]) Reset(id uint64) { delete(m.values, id) }

// ResetAll removes every recorded value.
func (m *Map[T]) ResetAll() { clear(m.values) }

// Default returns the fallback value for unset keys.
func (m *Map[T]) Default() T { return m.def }

// SetDefault replaces the fallback value for unset keys.
func (m *Map[T]) SetDefault(def T) { m.def = def }

// Len returns the number of explicitly recorded values.
func (m *Map[T]) Len() int { return len(m.values) }
