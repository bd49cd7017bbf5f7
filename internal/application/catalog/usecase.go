package catalog

import (
	"context"
	"time"

	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/ports"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
	"github.com/tu-usuario/serviteca-pro/internal/domain/entity"
	"github.com/tu-usuario/serviteca-pro/internal/domain/money"
	"github.com/tu-usuario/serviteca-pro/internal/domain/repository"
)

// CatalogUseCase altas de llantas, clientes y asesores, y gestión de precios
// con historial. Las entidades no se eliminan ni se editan tras el alta,
// salvo el precio de la llanta vía UpdatePrice.
type CatalogUseCase struct {
	txRunner  ports.TxRunner
	tires     repository.TireRepository
	customers repository.CustomerRepository
	advisors  repository.AdvisorRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	txRunner ports.TxRunner,
	tires repository.TireRepository,
	customers repository.CustomerRepository,
	advisors repository.AdvisorRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		txRunner:  txRunner,
		tires:     tires,
		customers: customers,
		advisors:  advisors,
	}
}

// RegisterTire registra una llanta con su precio parseado y normalizado a
// monto canónico. Un precio no numérico retorna domain.ErrInvalidAmount.
func (uc *CatalogUseCase) RegisterTire(ctx context.Context, in dto.RegisterTireRequest) (*dto.TireResponse, error) {
	price, err := money.Parse(in.Price)
	if err != nil {
		return nil, err
	}
	var tire *entity.Tire
	err = uc.txRunner.Run(ctx, func() error {
		tire = uc.tires.Add(&entity.Tire{
			SKU:          in.SKU,
			Brand:        in.Brand,
			Model:        in.Model,
			Size:         in.Size,
			Price:        price,
			PriceHistory: []entity.PriceChange{},
			CreatedAt:    time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTireResponse(tire), nil
}

// RegisterCustomer registra un cliente. Teléfono y email son opcionales.
func (uc *CatalogUseCase) RegisterCustomer(ctx context.Context, in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	var customer *entity.Customer
	err := uc.txRunner.Run(ctx, func() error {
		customer = uc.customers.Add(&entity.Customer{
			Name:      in.Name,
			Document:  in.Document,
			Phone:     in.Phone,
			Email:     in.Email,
			CreatedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{
		ID:       customer.ID,
		Name:     customer.Name,
		Document: customer.Document,
		Phone:    customer.Phone,
		Email:    customer.Email,
	}, nil
}

// RegisterAdvisor registra un asesor de ventas.
func (uc *CatalogUseCase) RegisterAdvisor(ctx context.Context, in dto.RegisterAdvisorRequest) (*dto.AdvisorResponse, error) {
	var advisor *entity.Advisor
	err := uc.txRunner.Run(ctx, func() error {
		advisor = uc.advisors.Add(&entity.Advisor{
			Name:      in.Name,
			Document:  in.Document,
			Email:     in.Email,
			CreatedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AdvisorResponse{
		ID:       advisor.ID,
		Name:     advisor.Name,
		Document: advisor.Document,
		Email:    advisor.Email,
	}, nil
}

// UpdatePrice parsea y normaliza el nuevo precio, agrega {fecha, anterior,
// nuevo} al historial y actualiza el precio vigente de la llanta.
func (uc *CatalogUseCase) UpdatePrice(ctx context.Context, tireID int64, in dto.UpdatePriceRequest) (*dto.TireResponse, error) {
	newPrice, err := money.Parse(in.Price)
	if err != nil {
		return nil, err
	}
	var tire *entity.Tire
	err = uc.txRunner.Run(ctx, func() error {
		t, ok := uc.tires.GetByID(tireID)
		if !ok {
			return domain.ErrTireNotFound
		}
		t.PriceHistory = append(t.PriceHistory, entity.PriceChange{
			Date:     time.Now(),
			Previous: t.Price,
			New:      newPrice,
		})
		t.Price = newPrice
		if err := uc.tires.Replace(t.ID, t); err != nil {
			return err
		}
		tire = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTireResponse(tire), nil
}

// PriceHistory retorna el historial de cambios de precio en orden cronológico.
func (uc *CatalogUseCase) PriceHistory(ctx context.Context, tireID int64) ([]dto.PriceChangeResponse, error) {
	var out []dto.PriceChangeResponse
	err := uc.txRunner.View(ctx, func() error {
		tire, ok := uc.tires.GetByID(tireID)
		if !ok {
			return domain.ErrTireNotFound
		}
		out = make([]dto.PriceChangeResponse, 0, len(tire.PriceHistory))
		for _, ch := range tire.PriceHistory {
			out = append(out, dto.PriceChangeResponse{
				Date:     ch.Date,
				Previous: ch.Previous,
				New:      ch.New,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toTireResponse(t *entity.Tire) *dto.TireResponse {
	return &dto.TireResponse{
		ID:    t.ID,
		SKU:   t.SKU,
		Brand: t.Brand,
		Model: t.Model,
		Size:  t.Size,
		Price: t.Price,
	}
}
