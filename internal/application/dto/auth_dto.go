package dto

import "time"

// RegisterRequest entrada para el alta de un tenant: crea la empresa y su
// primer usuario admin_cliente en una sola operación.
type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	CompanyRUT  string `json:"company_rut" validate:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
}

// RegisterResponse salida del registro: empresa creada + token inicial.
type RegisterResponse struct {
	Token   string          `json:"token"`
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	RUT       string    `json:"rut,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
