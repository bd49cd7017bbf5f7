package dto

// AdjustInventoryRequest entrada para ajustar stock. Threshold es opcional:
// obligatorio al crear el registro, y en ajustes posteriores solo se aplica
// si viene presente.
type AdjustInventoryRequest struct {
	TireID    int64  `json:"tire_id"`
	Delta     int64  `json:"delta"`
	Threshold *int64 `json:"threshold,omitempty"`
}

// InventoryRecordResponse estado de stock de una llanta tras un ajuste.
type InventoryRecordResponse struct {
	TireID    int64 `json:"tire_id"`
	Quantity  int64 `json:"quantity"`
	Threshold int64 `json:"threshold"`
}

// InventoryRow fila del inventario consultado: registro de stock unido con
// los campos descriptivos de la llanta y la bandera de alerta.
type InventoryRow struct {
	TireID    int64  `json:"tire_id"`
	SKU       string `json:"sku"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Size      string `json:"size"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
	Alert     bool   `json:"alert"` // cantidad <= umbral (no estricta)
}
