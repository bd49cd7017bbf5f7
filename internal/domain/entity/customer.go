package entity

import "time"

// Customer representa un cliente de la serviteca.
type Customer struct {
	ID        int64
	Name      string
	Document  string // cédula o NIT
	Phone     string
	Email     string
	CreatedAt time.Time
}
