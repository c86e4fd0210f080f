// Package purchases registra compras a proveedores: ingresan stock a una
// sucursal y recalculan el costo promedio ponderado de cada producto.
package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/inventory"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// UseCase casos de uso de compras.
type UseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	branchRepo   repository.BranchRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	branchRepo repository.BranchRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		branchRepo:   branchRepo,
	}
}

// Create registra una compra: por cada línea bloquea la fila de stock, suma
// la cantidad y recalcula el costo promedio ponderado del producto. Todo en
// una sola transacción.
func (uc *UseCase) Create(ctx context.Context, companyID, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	if date.After(now) {
		return nil, domain.ErrInvalidInput // fecha futura
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.resolveBranch(companyID, in.BranchID)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity < 1 || item.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if _, ok := productsByID[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
	}

	// El total es determinista desde la entrada: Σ cantidad * costo unitario.
	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)))
	}

	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		SupplierID:    supplier.ID,
		BranchID:      branch.ID,
		UserID:        userID,
		InvoiceNumber: in.InvoiceNumber,
		Date:          date,
		Total:         total,
		CreatedAt:     now,
	}
	var items []*entity.PurchaseItem

	err = uc.txRunner.RunPurchase(ctx, func(
		invRepo repository.InventoryRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, item := range in.Items {
			product := productsByID[item.ProductID]

			// Bloquea la fila de stock y recalcula el costo promedio con las
			// existencias previas de la sucursal.
			row, err := invRepo.GetForUpdate(branch.ID, product.ID)
			if err != nil {
				return err
			}
			prevQty := decimal.NewFromInt(row.Stock)
			entryQty := decimal.NewFromInt(item.Quantity)
			newCost := inventory.AverageCost(prevQty, product.Cost, entryQty, item.UnitCost)
			if err := productRepo.UpdateCost(product.ID, newCost); err != nil {
				return err
			}
			product.Cost = newCost // líneas repetidas del mismo producto encadenan el promedio

			row.Stock += item.Quantity
			row.UpdatedAt = now
			if err := invRepo.Upsert(row); err != nil {
				return err
			}

			line := &entity.PurchaseItem{
				ID:         uuid.New().String(),
				PurchaseID: purchase.ID,
				ProductID:  product.ID,
				Quantity:   item.Quantity,
				UnitCost:   item.UnitCost,
			}
			if err := purchaseRepo.CreateItem(line); err != nil {
				return err
			}
			items = append(items, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(purchase, items), nil
}

func (uc *UseCase) resolveBranch(companyID, branchID string) (*entity.Branch, error) {
	if branchID != "" {
		branch, err := uc.branchRepo.GetByID(branchID)
		if err != nil {
			return nil, err
		}
		if branch == nil || branch.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		return branch, nil
	}
	branch, err := uc.branchRepo.FirstByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNoBranch
	}
	return branch, nil
}

// Get devuelve una compra del tenant con sus líneas.
func (uc *UseCase) Get(companyID, purchaseID string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if purchase.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.purchaseRepo.GetItemsByPurchase(purchaseID)
	if err != nil {
		return nil, err
	}
	return toResponse(purchase, items), nil
}

// List compras del tenant paginadas (sin líneas).
func (uc *UseCase) List(companyID string, limit, offset int) (*dto.PurchaseListResponse, error) {
	purchases, err := uc.purchaseRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{
		Items: make([]dto.PurchaseResponse, 0, len(purchases)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range purchases {
		out.Items = append(out.Items, *toResponse(p, nil))
	}
	return out, nil
}

func toResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		SupplierID:    p.SupplierID,
		BranchID:      p.BranchID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date,
		Total:         p.Total,
		Items:         make([]dto.PurchaseItemResponse, 0, len(items)),
		CreatedAt:     p.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
		})
	}
	return resp
}
