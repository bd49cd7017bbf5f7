package repository

import "github.com/tu-usuario/serviteca-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Add(customer *entity.Customer) *entity.Customer
	GetByID(id int64) (*entity.Customer, bool)
	List() []*entity.Customer
}

// AdvisorRepository define el puerto de persistencia para Advisor.
type AdvisorRepository interface {
	Add(advisor *entity.Advisor) *entity.Advisor
	GetByID(id int64) (*entity.Advisor, bool)
	List() []*entity.Advisor
}
