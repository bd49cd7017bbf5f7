package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordReturnRequest entrada para registrar una devolución contra una venta.
type RecordReturnRequest struct {
	SaleID int64             `json:"sale_id"`
	Items  []SaleItemRequest `json:"items"`
	Reason string            `json:"reason"`
}

// ReturnLineResponse una línea de devolución, valorada al precio vigente.
type ReturnLineResponse struct {
	TireID    int64           `json:"tire_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ReturnResponse devolución registrada.
type ReturnResponse struct {
	ID        int64                `json:"id"`
	Reference string               `json:"reference"`
	SaleID    int64                `json:"sale_id"`
	Date      time.Time            `json:"date"`
	Reason    string               `json:"reason"`
	Lines     []ReturnLineResponse `json:"lines"`
}
