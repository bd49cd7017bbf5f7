package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest un ítem (llanta, cantidad) dentro de una venta o devolución.
type SaleItemRequest struct {
	TireID   int64 `json:"tire_id"`
	Quantity int64 `json:"quantity"`
}

// RecordSaleRequest entrada para registrar una venta multi-ítem.
type RecordSaleRequest struct {
	CustomerID int64             `json:"customer_id"`
	AdvisorID  int64             `json:"advisor_id"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleLineResponse una línea de venta con el precio capturado.
type SaleLineResponse struct {
	TireID    int64           `json:"tire_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta confirmada con sus líneas.
type SaleResponse struct {
	ID         int64              `json:"id"`
	Reference  string             `json:"reference"`
	CustomerID int64              `json:"customer_id"`
	AdvisorID  int64              `json:"advisor_id"`
	Date       time.Time          `json:"date"`
	Total      decimal.Decimal    `json:"total"`
	Lines      []SaleLineResponse `json:"lines"`
}
