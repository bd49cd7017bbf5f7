package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterTireRequest entrada para registrar una llanta.
// Price viaja como texto y se parsea con money.Parse para que el redondeo
// opere sobre la representación decimal, nunca sobre un float.
type RegisterTireRequest struct {
	SKU   string `json:"sku" validate:"required,min=1,max=100"`
	Brand string `json:"brand" validate:"required,min=1,max=100"`
	Model string `json:"model" validate:"required,min=1,max=100"`
	Size  string `json:"size" validate:"required,min=1,max=50"`
	Price string `json:"price"`
}

// TireResponse llanta con su precio vigente.
type TireResponse struct {
	ID    int64           `json:"id"`
	SKU   string          `json:"sku"`
	Brand string          `json:"brand"`
	Model string          `json:"model"`
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// UpdatePriceRequest entrada para actualizar el precio de una llanta.
type UpdatePriceRequest struct {
	Price string `json:"price"`
}

// PriceChangeResponse una entrada del historial de precios.
type PriceChangeResponse struct {
	Date     time.Time       `json:"date"`
	Previous decimal.Decimal `json:"previous"`
	New      decimal.Decimal `json:"new"`
}
