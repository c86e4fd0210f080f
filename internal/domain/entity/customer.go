package entity

import "time"

// Customer representa un cliente final registrado de la empresa (opcional en ventas).
type Customer struct {
	ID        string
	CompanyID string
	RUT       string // opcional
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
