package returns

import (
	"context"
	"strings"
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

// ReturnsUseCase registra devoluciones parciales contra una venta,
// reingresando stock. Las líneas se valoran al precio vigente de la llanta,
// no al precio capturado en la venta (comportamiento heredado del diseño
// original; una variante corregida copiaría SaleLine.UnitPrice).
type ReturnsUseCase struct {
	txRunner ports.TxRunner
	tires    repository.TireRepository
	stock    repository.InventoryRepository
	sales    repository.SaleRepository
	returns  repository.ReturnRepository
}

// NewReturnsUseCase construye el caso de uso.
func NewReturnsUseCase(
	txRunner ports.TxRunner,
	tires repository.TireRepository,
	stock repository.InventoryRepository,
	sales repository.SaleRepository,
	returns repository.ReturnRepository,
) *ReturnsUseCase {
	return &ReturnsUseCase{
		txRunner: txRunner,
		tires:    tires,
		stock:    stock,
		sales:    sales,
		returns:  returns,
	}
}

// RecordReturn valida cada línea contra lo vendido por llanta en la venta
// referenciada y, si todo pasa, reingresa stock y registra la devolución.
// Un fallo de validación no deja mutación alguna.
//
// Cada devolución se valida contra los totales originales de la venta, no
// contra "vendido menos ya devuelto": varias devoluciones sobre la misma
// venta pueden en conjunto exceder lo vendido.
// TODO: llevar contador de devuelto por línea de venta para acotar
// devoluciones acumuladas.
func (uc *ReturnsUseCase) RecordReturn(ctx context.Context, in dto.RecordReturnRequest) (*dto.ReturnResponse, error) {
	var ret *entity.Return
	err := uc.txRunner.Run(ctx, func() error {
		sale, ok := uc.sales.GetByID(in.SaleID)
		if !ok {
			return domain.ErrSaleNotFound
		}
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			return &domain.InvalidReturnError{Reason: "debe indicar un motivo de devolución"}
		}

		// Total vendido por llanta en esta venta (una llanta puede repetirse
		// en varias líneas).
		sold := make(map[int64]int64, len(sale.Lines))
		for _, l := range sale.Lines {
			sold[l.TireID] += l.Quantity
		}

		for _, item := range in.Items {
			if item.Quantity <= 0 {
				return &domain.InvalidReturnError{
					TireID: item.TireID,
					Reason: "cantidad a devolver debe ser mayor que cero",
				}
			}
			if sold[item.TireID] < item.Quantity {
				return &domain.InvalidReturnError{
					TireID:    item.TireID,
					Requested: item.Quantity,
					Sold:      sold[item.TireID],
				}
			}
		}

		// Confirmación: reingresa stock y arma las líneas al precio vigente.
		now := time.Now()
		lines := make([]entity.ReturnLine, 0, len(in.Items))
		for _, item := range in.Items {
			tire, ok := uc.tires.GetByID(item.TireID)
			if !ok {
				return domain.ErrTireNotFound
			}
			inv, ok := uc.stock.Get(item.TireID)
			if !ok {
				// Una devolución nunca se bloquea por falta de registro de
				// stock: se crea con umbral 0.
				inv = &entity.Inventory{TireID: item.TireID}
			}
			inv.Quantity += item.Quantity
			inv.UpdatedAt = now
			uc.stock.Upsert(inv)

			subtotal := money.Normalize(decimal.NewFromInt(item.Quantity).Mul(tire.Price))
			lines = append(lines, entity.ReturnLine{
				TireID:    item.TireID,
				Quantity:  item.Quantity,
				UnitPrice: tire.Price,
				Subtotal:  subtotal,
			})
		}

		ret = uc.returns.Add(&entity.Return{
			Reference: uuid.New().String(),
			SaleID:    sale.ID,
			Date:      now,
			Reason:    reason,
			Lines:     lines,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// ListReturns retorna las devoluciones en orden de registro.
func (uc *ReturnsUseCase) ListReturns(ctx context.Context) ([]*dto.ReturnResponse, error) {
	var out []*dto.ReturnResponse
	err := uc.txRunner.View(ctx, func() error {
		list := uc.returns.List()
		out = make([]*dto.ReturnResponse, 0, len(list))
		for _, d := range list {
			out = append(out, toReturnResponse(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toReturnResponse(d *entity.Return) *dto.ReturnResponse {
	lines := make([]dto.ReturnLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, dto.ReturnLineResponse{
			TireID:    l.TireID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return &dto.ReturnResponse{
		ID:        d.ID,
		Reference: d.Reference,
		SaleID:    d.SaleID,
		Date:      d.Date,
		Reason:    d.Reason,
		Lines:     lines,
	}
}
