package repository

import "github.com/tu-usuario/serviteca-pro/internal/domain/entity"

// InventoryRepository define el puerto para el stock por llanta. A diferencia
// de los demás repos no asigna IDs: la clave es el ID de la llanta, que es el
// patrón de acceso dominante (ventas y devoluciones buscan por llanta).
type InventoryRepository interface {
	Get(tireID int64) (*entity.Inventory, bool)
	Upsert(inv *entity.Inventory) *entity.Inventory
	List() []*entity.Inventory
}
