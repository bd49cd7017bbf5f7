package memory

import "github.com/tu-usuario/serviteca-pro/internal/domain"

// Collection es un almacén genérico en memoria con IDs enteros secuenciales.
// Los IDs inician en 1, son monotónicos y nunca se reutilizan. List conserva
// el orden de inserción. No hay eliminación.
//
// Collection no es segura para uso concurrente por sí misma: las escrituras
// se serializan con el TxRunner (una sola región de exclusión para todo el
// estado del proceso).
type Collection[T any] struct {
	items  map[int64]T
	order  []int64
	nextID int64
	withID func(item T, id int64) T
}

// NewCollection construye la colección. withID retorna el elemento con el ID
// asignado (las entidades son structs planos, sin setters).
func NewCollection[T any](withID func(item T, id int64) T) *Collection[T] {
	return &Collection[T]{
		items:  make(map[int64]T),
		nextID: 1,
		withID: withID,
	}
}

// Add asigna el siguiente ID y guarda el elemento. Retorna el elemento ya
// identificado.
func (c *Collection[T]) Add(item T) T {
	id := c.nextID
	c.nextID++
	item = c.withID(item, id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

// Get retorna el elemento por ID.
func (c *Collection[T]) Get(id int64) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// List retorna los elementos en orden de inserción.
func (c *Collection[T]) List() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Replace sobrescribe el elemento con el ID dado. Falla si el ID no existe.
func (c *Collection[T]) Replace(id int64, item T) error {
	if _, ok := c.items[id]; !ok {
		return domain.ErrNotFound
	}
	c.items[id] = item
	return nil
}

// Len retorna la cantidad de elementos almacenados.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
