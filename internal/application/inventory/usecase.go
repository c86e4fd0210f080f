// Package inventory implementa el libro de inventario por (sucursal, producto):
// ajustes manuales de stock y consultas de existencia.
package inventory

import (
	"context"
	"time"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// Operaciones de ajuste manual.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
)

// UseCase casos de uso del libro de inventario.
type UseCase struct {
	txRunner    TxRunner
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		invRepo:     invRepo,
		productRepo: productRepo,
		branchRepo:  branchRepo,
	}
}

// resolveBranch valida la sucursal indicada o cae a la primera del tenant.
// Sin sucursales no hay dónde llevar stock: ErrNoBranch.
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

// Adjust aplica un ajuste manual de stock a un producto. "add" ingresa
// unidades; "subtract" descuenta y falla con ErrInsufficientStock si el stock
// no alcanza (el stock nunca queda negativo). Todo el read-modify-write corre
// dentro de una transacción con bloqueo de fila.
func (uc *UseCase) Adjust(ctx context.Context, companyID, productID string, in dto.StockAdjustmentRequest) (*dto.InventoryResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Operation != OpAdd && in.Operation != OpSubtract {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.resolveBranch(companyID, in.BranchID)
	if err != nil {
		return nil, err
	}

	var result *entity.Inventory
	err = uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		// Bloquea la fila (SELECT FOR UPDATE); si no existe llega en cero.
		row, err := invRepo.GetForUpdate(branch.ID, productID)
		if err != nil {
			return err
		}
		switch in.Operation {
		case OpAdd:
			row.Stock += in.Quantity
		case OpSubtract:
			if row.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			row.Stock -= in.Quantity
		}
		row.UpdatedAt = time.Now()
		if err := invRepo.Upsert(row); err != nil {
			return err
		}
		result = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(result), nil
}

// GetStock devuelve el stock del producto en la sucursal dada (o en la
// primera sucursal si no se indica). Sin fila de inventario responde cero.
func (uc *UseCase) GetStock(companyID, productID, branchID string) (*dto.InventoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.resolveBranch(companyID, branchID)
	if err != nil {
		return nil, err
	}
	row, err := uc.invRepo.Get(branch.ID, productID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(row), nil
}

// ListByBranch inventario paginado de una sucursal del tenant.
func (uc *UseCase) ListByBranch(companyID, branchID string, limit, offset int) (*dto.BranchInventoryResponse, error) {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.invRepo.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.BranchInventoryResponse{BranchID: branchID, Items: make([]dto.InventoryResponse, 0, len(rows))}
	for _, r := range rows {
		out.Items = append(out.Items, *toInventoryResponse(r))
	}
	return out, nil
}

// SetInitialStock carga el stock inicial de un producto recién creado en la
// primera sucursal del tenant. Sin sucursales el stock inicial se omite en
// silencio (el producto queda con stock cero).
func (uc *UseCase) SetInitialStock(ctx context.Context, companyID, productID string, qty int64) error {
	if qty <= 0 {
		return nil
	}
	branch, err := uc.branchRepo.FirstByCompany(companyID)
	if err != nil {
		return err
	}
	if branch == nil {
		return nil
	}
	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		row, err := invRepo.GetForUpdate(branch.ID, productID)
		if err != nil {
			return err
		}
		row.Stock += qty
		row.UpdatedAt = time.Now()
		return invRepo.Upsert(row)
	})
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:        i.ID,
		BranchID:  i.BranchID,
		ProductID: i.ProductID,
		Stock:     i.Stock,
		MinStock:  i.MinStock,
		LowStock:  i.IsLowStock(),
		UpdatedAt: i.UpdatedAt,
	}
}
