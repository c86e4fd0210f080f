package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// PlanRepository define el puerto de persistencia para Plan (DIP).
// Los planes son globales (no pertenecen a un tenant); solo super_admin los edita.
type PlanRepository interface {
	Create(plan *entity.Plan) error
	GetByID(id string) (*entity.Plan, error)
	Update(plan *entity.Plan) error
	List() ([]*entity.Plan, error)
	Delete(id string) error
}
