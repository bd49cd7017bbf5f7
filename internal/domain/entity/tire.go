package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tire representa una llanta del catálogo. Price es el precio de venta vigente
// (monto canónico a 2 decimales); PriceHistory es un log append-only de cambios.
// Las llantas nunca se eliminan.
type Tire struct {
	ID           int64
	SKU          string // código único visible (no se valida unicidad, como el catálogo original)
	Brand        string
	Model        string
	Size         string // medida, ej: "205/55 R16"
	Price        decimal.Decimal
	PriceHistory []PriceChange
	CreatedAt    time.Time
}

// PriceChange registra un cambio de precio: {fecha, anterior, nuevo}.
type PriceChange struct {
	Date     time.Time
	Previous decimal.Decimal
	New      decimal.Decimal
}
