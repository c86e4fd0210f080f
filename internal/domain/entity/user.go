package entity

import "time"

// Roles válidos para User. Conjunto cerrado: toda autorización pasa por estas
// constantes en el borde HTTP (RequireRole), nunca por comparaciones sueltas.
const (
	RoleSuperAdmin   = "super_admin"   // operador de la plataforma, sin tenant
	RoleAdminCliente = "admin_cliente" // dueño/administrador de la empresa
	RoleGerente      = "gerente"
	RoleVendedor     = "vendedor"
	RoleClienteFinal = "cliente_final" // cliente ecommerce, sin acceso al backoffice
)

// ValidRole informa si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdminCliente, RoleGerente, RoleVendedor, RoleClienteFinal:
		return true
	}
	return false
}

// User representa un usuario del sistema. CompanyID vacío solo para super_admin.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	RUT          string // opcional
	Role         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
