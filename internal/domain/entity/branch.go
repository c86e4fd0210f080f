package entity

import "time"

// Branch representa una sucursal de la empresa. El inventario se lleva por
// (sucursal, producto).
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
