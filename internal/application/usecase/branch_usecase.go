package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	dquota "github.com/farmapos/farmapos-api/internal/domain/quota"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales. La creación pasa por el
// cupo "branches" del plan.
type BranchUseCase struct {
	repo  repository.BranchRepository
	quota QuotaChecker
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, quota QuotaChecker) *BranchUseCase {
	return &BranchUseCase{repo: repo, quota: quota}
}

// Create crea una sucursal si el plan tiene cupo.
func (uc *BranchUseCase) Create(companyID, role string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if err := uc.quota.CheckCreation(companyID, role, dquota.MetricBranches); err != nil {
		return nil, err
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal del tenant.
func (uc *BranchUseCase) GetByID(companyID, id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal del tenant.
func (uc *BranchUseCase) Update(companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales del tenant con paginación.
func (uc *BranchUseCase) List(companyID string, limit, offset int) (*dto.BranchListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una sucursal del tenant.
func (uc *BranchUseCase) Delete(companyID, id string) error {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil || branch.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
