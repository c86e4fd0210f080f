package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlanRequest entrada para crear un plan (solo super_admin).
// Un límite >= 999 se interpreta como ilimitado.
type CreatePlanRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	MaxBranches  int             `json:"max_branches" validate:"min=0"`
	MaxUsers     int             `json:"max_users" validate:"min=0"`
	MaxProducts  int             `json:"max_products" validate:"min=0"`
	MaxSuppliers int             `json:"max_suppliers" validate:"min=0"`
	Price        decimal.Decimal `json:"price"`
}

// UpdatePlanRequest entrada para actualizar un plan. Cambiar un límite afecta
// de inmediato a todas las empresas suscritas al plan.
type UpdatePlanRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=100"`
	MaxBranches  *int             `json:"max_branches" validate:"omitempty,min=0"`
	MaxUsers     *int             `json:"max_users" validate:"omitempty,min=0"`
	MaxProducts  *int             `json:"max_products" validate:"omitempty,min=0"`
	MaxSuppliers *int             `json:"max_suppliers" validate:"omitempty,min=0"`
	Price        *decimal.Decimal `json:"price"`
}

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MaxBranches  int             `json:"max_branches"`
	MaxUsers     int             `json:"max_users"`
	MaxProducts  int             `json:"max_products"`
	MaxSuppliers int             `json:"max_suppliers"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PlanListResponse lista de planes (sin paginar: son pocos).
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
}
