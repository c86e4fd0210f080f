package entity

import "time"

// Supplier representa un proveedor de la empresa (cuenta contra el cupo suppliers).
type Supplier struct {
	ID          string
	CompanyID   string
	Name        string
	RUT         string
	ContactName string
	Phone       string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
