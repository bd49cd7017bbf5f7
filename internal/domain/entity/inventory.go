package entity

import "time"

// Inventory representa el stock de una llanta: cantidad disponible y umbral
// mínimo de alerta. Hay exactamente un registro por llanta, creado en el
// primer ajuste. Invariante: Quantity nunca es negativa.
type Inventory struct {
	TireID    int64
	Quantity  int64
	Threshold int64
	UpdatedAt time.Time
}

// LowStock indica si la cantidad está en o por debajo del umbral (alerta).
// La comparación es no estricta: cantidad == umbral también dispara alerta.
func (i Inventory) LowStock() bool {
	return i.Quantity <= i.Threshold
}
