package repository

import "github.com/tu-usuario/serviteca-pro/internal/domain/entity"

// TireRepository define el puerto de persistencia para Tire (DIP).
// Add asigna el ID secuencial; no hay eliminación.
type TireRepository interface {
	Add(tire *entity.Tire) *entity.Tire
	GetByID(id int64) (*entity.Tire, bool)
	List() []*entity.Tire
	Replace(id int64, tire *entity.Tire) error
}
