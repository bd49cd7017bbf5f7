package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/ports"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
	"github.com/tu-usuario/serviteca-pro/internal/domain/entity"
	"github.com/tu-usuario/serviteca-pro/internal/domain/repository"
)

// InventoryUseCase ajustes de stock y consultas de inventario con alerta de
// bajo stock. El umbral mínimo vive junto a la cantidad en el registro de
// stock de cada llanta.
type InventoryUseCase struct {
	txRunner ports.TxRunner
	tires    repository.TireRepository
	stock    repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner ports.TxRunner,
	tires repository.TireRepository,
	stock repository.InventoryRepository,
) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, tires: tires, stock: stock}
}

// Adjust aplica un delta al stock de una llanta.
//
// Primer ajuste (no existe registro): requiere delta > 0 y umbral presente;
// crea el registro. Ajustes posteriores: la cantidad resultante no puede ser
// negativa, y el umbral solo cambia si viene presente en la petición.
func (uc *InventoryUseCase) Adjust(ctx context.Context, in dto.AdjustInventoryRequest) (*dto.InventoryRecordResponse, error) {
	var out *dto.InventoryRecordResponse
	err := uc.txRunner.Run(ctx, func() error {
		if _, ok := uc.tires.GetByID(in.TireID); !ok {
			return domain.ErrTireNotFound
		}

		now := time.Now()
		inv, ok := uc.stock.Get(in.TireID)
		if !ok {
			if in.Delta <= 0 || in.Threshold == nil {
				return fmt.Errorf("%w: para crear inventario se requiere delta > 0 y umbral mínimo", domain.ErrInvalidAdjustment)
			}
			inv = &entity.Inventory{
				TireID:    in.TireID,
				Quantity:  in.Delta,
				Threshold: *in.Threshold,
				UpdatedAt: now,
			}
		} else {
			newQty := inv.Quantity + in.Delta
			if newQty < 0 {
				return fmt.Errorf("%w: la cantidad no puede quedar negativa", domain.ErrInvalidAdjustment)
			}
			inv.Quantity = newQty
			if in.Threshold != nil {
				inv.Threshold = *in.Threshold
			}
			inv.UpdatedAt = now
		}

		uc.stock.Upsert(inv)
		out = &dto.InventoryRecordResponse{
			TireID:    inv.TireID,
			Quantity:  inv.Quantity,
			Threshold: inv.Threshold,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryAll retorna cada registro de stock unido con los campos descriptivos
// de su llanta, con Alert = cantidad <= umbral (comparación no estricta).
func (uc *InventoryUseCase) QueryAll(ctx context.Context) ([]dto.InventoryRow, error) {
	var rows []dto.InventoryRow
	err := uc.txRunner.View(ctx, func() error {
		list := uc.stock.List()
		rows = make([]dto.InventoryRow, 0, len(list))
		for _, inv := range list {
			tire, ok := uc.tires.GetByID(inv.TireID)
			if !ok {
				return domain.ErrTireNotFound
			}
			rows = append(rows, dto.InventoryRow{
				TireID:    tire.ID,
				SKU:       tire.SKU,
				Brand:     tire.Brand,
				Model:     tire.Model,
				Size:      tire.Size,
				Quantity:  inv.Quantity,
				Threshold: inv.Threshold,
				Alert:     inv.LowStock(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LowStockReport filtra QueryAll a solo las filas en alerta, mismo orden.
func (uc *InventoryUseCase) LowStockReport(ctx context.Context) ([]dto.InventoryRow, error) {
	rows, err := uc.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRow, 0, len(rows))
	for _, row := range rows {
		if row.Alert {
			out = append(out, row)
		}
	}
	return out, nil
}
