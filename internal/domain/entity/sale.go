package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta confirmada. Total y Lines son inmutables tras la
// creación: los precios unitarios quedan capturados al momento de la venta
// aunque el precio de la llanta cambie después.
type Sale struct {
	ID         int64
	Reference  string // código de referencia (UUID) para trazabilidad en logs
	CustomerID int64
	AdvisorID  int64
	Date       time.Time
	Total      decimal.Decimal
	Lines      []SaleLine
}

// SaleLine representa una línea de venta: llanta, cantidad y valores al
// momento de la venta.
type SaleLine struct {
	TireID    int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
