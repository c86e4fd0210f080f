package dto

// CreateUserRequest entrada para crear un usuario del equipo (sujeta a cupo
// users; password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	RUT      string `json:"rut"`
	Role     string `json:"role" validate:"required,oneof=admin_cliente gerente vendedor"`
}

// UpdateUserRequest entrada para actualizar un usuario del equipo.
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role   *string `json:"role" validate:"omitempty,oneof=admin_cliente gerente vendedor"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
