package entity

import "time"

// Advisor representa un asesor de ventas.
type Advisor struct {
	ID        int64
	Name      string
	Document  string
	Email     string
	CreatedAt time.Time
}
