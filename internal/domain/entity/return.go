package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return representa una devolución contra una venta. Inmutable tras la
// creación. Las líneas se valoran al precio vigente de la llanta al momento
// de la devolución, no al precio de la venta original.
type Return struct {
	ID        int64
	Reference string // código de referencia (UUID) para trazabilidad en logs
	SaleID    int64
	Date      time.Time
	Reason    string // motivo obligatorio, ya recortado de espacios
	Lines     []ReturnLine
}

// ReturnLine representa una línea de devolución.
type ReturnLine struct {
	TireID    int64
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
