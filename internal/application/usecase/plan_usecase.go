package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// PlanUseCase administración de planes (solo super_admin). Cambiar los
// límites de un plan afecta de inmediato a todas las empresas suscritas.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// Create crea un plan.
func (uc *PlanUseCase) Create(in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if in.MaxBranches < 0 || in.MaxUsers < 0 || in.MaxProducts < 0 || in.MaxSuppliers < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	plan := &entity.Plan{
		ID:           uuid.New().String(),
		Name:         in.Name,
		MaxBranches:  in.MaxBranches,
		MaxUsers:     in.MaxUsers,
		MaxProducts:  in.MaxProducts,
		MaxSuppliers: in.MaxSuppliers,
		Price:        in.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByID obtiene un plan.
func (uc *PlanUseCase) GetByID(id string) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan), nil
}

// Update actualiza un plan.
func (uc *PlanUseCase) Update(id string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		plan.Name = *in.Name
	}
	if in.MaxBranches != nil {
		plan.MaxBranches = *in.MaxBranches
	}
	if in.MaxUsers != nil {
		plan.MaxUsers = *in.MaxUsers
	}
	if in.MaxProducts != nil {
		plan.MaxProducts = *in.MaxProducts
	}
	if in.MaxSuppliers != nil {
		plan.MaxSuppliers = *in.MaxSuppliers
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		plan.Price = *in.Price
	}
	plan.UpdatedAt = time.Now()
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// List lista todos los planes.
func (uc *PlanUseCase) List() (*dto.PlanListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPlanResponse(p))
	}
	return &dto.PlanListResponse{Items: items}, nil
}

// Delete elimina un plan.
func (uc *PlanUseCase) Delete(id string) error {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		MaxBranches:  p.MaxBranches,
		MaxUsers:     p.MaxUsers,
		MaxProducts:  p.MaxProducts,
		MaxSuppliers: p.MaxSuppliers,
		Price:        p.Price,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
