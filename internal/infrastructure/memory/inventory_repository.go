package memory

import (
	"github.com/tu-usuario/serviteca-pro/internal/domain/entity"
	"github.com/tu-usuario/serviteca-pro/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// InventoryRepository índice de stock por ID de llanta. No asigna IDs
// sintéticos: la llanta es la clave. List conserva orden de primer ingreso.
type InventoryRepository struct {
	byTire map[int64]*entity.Inventory
	order  []int64
}

// NewInventoryRepository construye el índice.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{byTire: make(map[int64]*entity.Inventory)}
}

// Get retorna el registro de stock de la llanta, si existe.
func (r *InventoryRepository) Get(tireID int64) (*entity.Inventory, bool) {
	inv, ok := r.byTire[tireID]
	return inv, ok
}

// Upsert crea o sobrescribe el registro de stock de la llanta.
func (r *InventoryRepository) Upsert(inv *entity.Inventory) *entity.Inventory {
	if _, ok := r.byTire[inv.TireID]; !ok {
		r.order = append(r.order, inv.TireID)
	}
	r.byTire[inv.TireID] = inv
	return inv
}

// List retorna los registros en orden de primer ingreso.
func (r *InventoryRepository) List() []*entity.Inventory {
	out := make([]*entity.Inventory, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byTire[id])
	}
	return out
}
