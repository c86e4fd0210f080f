package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	dquota "github.com/farmapos/farmapos-api/internal/domain/quota"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// InitialStockLoader carga el stock inicial de un producto recién creado.
// Lo implementa inventory.UseCase.
type InitialStockLoader interface {
	SetInitialStock(ctx context.Context, companyID, productID string, qty int64) error
}

// ProductUseCase casos de uso CRUD para productos. La creación pasa por el
// cupo "products"; (empresa, SKU) es único. Cost se mueve vía compras y Stock
// vía libro de inventario.
type ProductUseCase struct {
	repo         repository.ProductRepository
	quota        QuotaChecker
	initialStock InitialStockLoader
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, quota QuotaChecker, initialStock InitialStockLoader) *ProductUseCase {
	return &ProductUseCase{repo: repo, quota: quota, initialStock: initialStock}
}

// Create crea un producto si el plan tiene cupo y el SKU no existe en la
// empresa. El stock inicial, si viene, se carga en la primera sucursal.
func (uc *ProductUseCase) Create(ctx context.Context, companyID, role string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.quota.CheckCreation(companyID, role, dquota.MetricProducts); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CategoryID:  in.CategoryID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if in.InitialStock > 0 {
		if err := uc.initialStock.SetInitialStock(ctx, companyID, product.ID, in.InitialStock); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del tenant.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto del tenant. No toca Cost ni Stock.
func (uc *ProductUseCase) Update(companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos del tenant con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto del tenant.
func (uc *ProductUseCase) Delete(companyID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
