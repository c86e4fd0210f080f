package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	dquota "github.com/farmapos/farmapos-api/internal/domain/quota"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
	"github.com/farmapos/farmapos-api/pkg/rut"
)

// SupplierUseCase casos de uso CRUD para proveedores. La creación pasa por el
// cupo "suppliers" del plan.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	quota QuotaChecker
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, quota QuotaChecker) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, quota: quota}
}

// Create crea un proveedor si el plan tiene cupo. El RUT, si viene, se valida.
func (uc *SupplierUseCase) Create(companyID, role string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.quota.CheckCreation(companyID, role, dquota.MetricSuppliers); err != nil {
		return nil, err
	}
	if err := rut.Validate(in.RUT); err != nil {
		return nil, domain.ErrInvalidRUT
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		RUT:         in.RUT,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor del tenant.
func (uc *SupplierUseCase) GetByID(companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor del tenant.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores del tenant con paginación.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor del tenant.
func (uc *SupplierUseCase) Delete(companyID, id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Name:        s.Name,
		RUT:         s.RUT,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
