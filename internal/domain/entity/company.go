package entity

import "time"

// Estados válidos para Company.Status.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
	CompanyStatusInactive  = "inactive"
)

// Company representa una empresa/tenant del sistema (multi-tenant, enfoque Chile).
// Todas las entidades de negocio (sucursales, productos, ventas...) cuelgan de ella.
type Company struct {
	ID        string
	Name      string
	RUT       string // RUT chileno con dígito verificador
	Address   string
	Phone     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
