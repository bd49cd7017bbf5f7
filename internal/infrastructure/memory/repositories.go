package memory

import (
	"github.com/tu-usuario/serviteca-pro/internal/domain/entity"
	"github.com/tu-usuario/serviteca-pro/internal/domain/repository"
)

// Implementaciones en memoria de los puertos de repositorio. Una colección
// por tipo de entidad, como el diseño original (persistencia por proceso).

var _ repository.TireRepository = (*TireRepository)(nil)
var _ repository.CustomerRepository = (*CustomerRepository)(nil)
var _ repository.AdvisorRepository = (*AdvisorRepository)(nil)
var _ repository.SaleRepository = (*SaleRepository)(nil)
var _ repository.ReturnRepository = (*ReturnRepository)(nil)

// TireRepository repositorio en memoria de llantas.
type TireRepository struct {
	col *Collection[*entity.Tire]
}

// NewTireRepository construye el repositorio.
func NewTireRepository() *TireRepository {
	return &TireRepository{col: NewCollection(func(t *entity.Tire, id int64) *entity.Tire {
		t.ID = id
		return t
	})}
}

func (r *TireRepository) Add(tire *entity.Tire) *entity.Tire { return r.col.Add(tire) }
func (r *TireRepository) GetByID(id int64) (*entity.Tire, bool) { return r.col.Get(id) }
func (r *TireRepository) List() []*entity.Tire { return r.col.List() }
func (r *TireRepository) Replace(id int64, t *entity.Tire) error { return r.col.Replace(id, t) }

// CustomerRepository repositorio en memoria de clientes.
type CustomerRepository struct {
	col *Collection[*entity.Customer]
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{col: NewCollection(func(c *entity.Customer, id int64) *entity.Customer {
		c.ID = id
		return c
	})}
}

func (r *CustomerRepository) Add(c *entity.Customer) *entity.Customer { return r.col.Add(c) }
func (r *CustomerRepository) GetByID(id int64) (*entity.Customer, bool) {
	return r.col.Get(id)
}
func (r *CustomerRepository) List() []*entity.Customer { return r.col.List() }

// AdvisorRepository repositorio en memoria de asesores.
type AdvisorRepository struct {
	col *Collection[*entity.Advisor]
}

// NewAdvisorRepository construye el repositorio.
func NewAdvisorRepository() *AdvisorRepository {
	return &AdvisorRepository{col: NewCollection(func(a *entity.Advisor, id int64) *entity.Advisor {
		a.ID = id
		return a
	})}
}

func (r *AdvisorRepository) Add(a *entity.Advisor) *entity.Advisor { return r.col.Add(a) }
func (r *AdvisorRepository) GetByID(id int64) (*entity.Advisor, bool) {
	return r.col.Get(id)
}
func (r *AdvisorRepository) List() []*entity.Advisor { return r.col.List() }

// SaleRepository repositorio en memoria de ventas (cabecera + líneas juntas).
type SaleRepository struct {
	col *Collection[*entity.Sale]
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{col: NewCollection(func(s *entity.Sale, id int64) *entity.Sale {
		s.ID = id
		return s
	})}
}

func (r *SaleRepository) Add(s *entity.Sale) *entity.Sale { return r.col.Add(s) }
func (r *SaleRepository) GetByID(id int64) (*entity.Sale, bool) { return r.col.Get(id) }
func (r *SaleRepository) List() []*entity.Sale { return r.col.List() }

// ReturnRepository repositorio en memoria de devoluciones.
type ReturnRepository struct {
	col *Collection[*entity.Return]
}

// NewReturnRepository construye el repositorio.
func NewReturnRepository() *ReturnRepository {
	return &ReturnRepository{col: NewCollection(func(d *entity.Return, id int64) *entity.Return {
		d.ID = id
		return d
	})}
}

func (r *ReturnRepository) Add(d *entity.Return) *entity.Return { return r.col.Add(d) }
func (r *ReturnRepository) List() []*entity.Return { return r.col.List() }
