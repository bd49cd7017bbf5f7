package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/ports"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
	"github.com/tu-usuario/serviteca-pro/internal/domain/entity"
	"github.com/tu-usuario/serviteca-pro/internal/domain/money"
	"github.com/tu-usuario/serviteca-pro/internal/domain/repository"
)

// SalesUseCase registra ventas multi-ítem con garantía todo-o-nada y las
// lista con sus líneas.
type SalesUseCase struct {
	txRunner  ports.TxRunner
	tires     repository.TireRepository
	customers repository.CustomerRepository
	advisors  repository.AdvisorRepository
	stock     repository.InventoryRepository
	sales     repository.SaleRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	txRunner ports.TxRunner,
	tires repository.TireRepository,
	customers repository.CustomerRepository,
	advisors repository.AdvisorRepository,
	stock repository.InventoryRepository,
	sales repository.SaleRepository,
) *SalesUseCase {
	return &SalesUseCase{
		txRunner:  txRunner,
		tires:     tires,
		customers: customers,
		advisors:  advisors,
		stock:     stock,
		sales:     sales,
	}
}

// pendingLine resultado de la fase de validación: todo lo necesario para
// confirmar la línea sin volver a buscar.
type pendingLine struct {
	tire *entity.Tire
	inv  *entity.Inventory
	qty  int64
}

// RecordSale registra una venta en dos fases dentro de la región de exclusión:
//
//  1. Validación: cliente y asesor existen; cada llanta tiene registro de
//     stock con cantidad disponible suficiente para la suma de todas sus
//     líneas (una llanta puede repetirse en varias líneas). Sin mutación
//     alguna — un fallo aquí deja todo el estado intacto, sin necesidad de
//     log de rollback.
//  2. Confirmación: en el orden de entrada, descuenta stock, captura el precio
//     vigente como precio unitario y acumula subtotales normalizados.
//
// O todas las líneas se aplican, o ninguna; nunca queda estado parcial.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func() error {
		if _, ok := uc.customers.GetByID(in.CustomerID); !ok {
			return domain.ErrCustomerNotFound
		}
		if _, ok := uc.advisors.GetByID(in.AdvisorID); !ok {
			return domain.ErrAdvisorNotFound
		}

		// Fase de validación: stock suficiente para todos los ítems. El
		// pedido se acumula por llanta para que líneas repetidas de la misma
		// llanta no pasen cada una contra el mismo disponible.
		pending := make([]pendingLine, 0, len(in.Items))
		requested := make(map[int64]int64, len(in.Items))
		for _, item := range in.Items {
			inv, ok := uc.stock.Get(item.TireID)
			if !ok {
				return &domain.InsufficientStockError{
					TireID:    item.TireID,
					Requested: item.Quantity,
					Available: 0,
				}
			}
			requested[item.TireID] += item.Quantity
			if inv.Quantity < requested[item.TireID] {
				return &domain.InsufficientStockError{
					TireID:    item.TireID,
					Requested: requested[item.TireID],
					Available: inv.Quantity,
				}
			}
			tire, ok := uc.tires.GetByID(item.TireID)
			if !ok {
				return domain.ErrTireNotFound
			}
			pending = append(pending, pendingLine{tire: tire, inv: inv, qty: item.Quantity})
		}

		// Fase de confirmación: descuenta stock y arma líneas en el mismo orden.
		now := time.Now()
		lines := make([]entity.SaleLine, 0, len(pending))
		total := decimal.Zero
		for _, p := range pending {
			p.inv.Quantity -= p.qty
			p.inv.UpdatedAt = now
			uc.stock.Upsert(p.inv)

			subtotal := money.Normalize(decimal.NewFromInt(p.qty).Mul(p.tire.Price))
			lines = append(lines, entity.SaleLine{
				TireID:    p.tire.ID,
				Quantity:  p.qty,
				UnitPrice: p.tire.Price,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}

		sale = uc.sales.Add(&entity.Sale{
			Reference:  uuid.New().String(),
			CustomerID: in.CustomerID,
			AdvisorID:  in.AdvisorID,
			Date:       now,
			Total:      money.Normalize(total),
			Lines:      lines,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// ListSales retorna las ventas en orden de registro, con sus líneas.
func (uc *SalesUseCase) ListSales(ctx context.Context) ([]*dto.SaleResponse, error) {
	var out []*dto.SaleResponse
	err := uc.txRunner.View(ctx, func() error {
		list := uc.sales.List()
		out = make([]*dto.SaleResponse, 0, len(list))
		for _, s := range list {
			out = append(out, toSaleResponse(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			TireID:    l.TireID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		Reference:  s.Reference,
		CustomerID: s.CustomerID,
		AdvisorID:  s.AdvisorID,
		Date:       s.Date,
		Total:      s.Total,
		Lines:      lines,
	}
}
