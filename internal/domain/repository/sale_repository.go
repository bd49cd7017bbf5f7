package repository

import "github.com/tu-usuario/serviteca-pro/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (con sus líneas).
type SaleRepository interface {
	Add(sale *entity.Sale) *entity.Sale
	GetByID(id int64) (*entity.Sale, bool)
	List() []*entity.Sale
}

// ReturnRepository define el puerto de persistencia para Return.
type ReturnRepository interface {
	Add(ret *entity.Return) *entity.Return
	List() []*entity.Return
}
