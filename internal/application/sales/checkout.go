// Package sales implementa el motor de ventas de punto de venta: checkout
// atómico con descuento de stock y lectura de ventas.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// CheckoutUseCase crea una venta y descuenta el inventario en una sola
// transacción.
type CheckoutUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	customerRepo repository.CustomerRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		customerRepo: customerRepo,
	}
}

// Checkout procesa el carrito: bloquea el stock de cada producto en la
// sucursal (SELECT FOR UPDATE), verifica existencia, descuenta y persiste
// cabecera y líneas con el precio fotografiado al momento. Cualquier fallo
// hace rollback de todo.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, companyID, sellerID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Qty < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Sucursal: la indicada o la primera del tenant.
	branch, err := uc.resolveBranch(companyID, in.BranchID)
	if err != nil {
		return nil, err
	}

	// Cliente opcional; si viene debe ser del tenant.
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	// Productos y precios se leen fuera de la tx (solo lectura); el stock se
	// bloquea adentro.
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if _, ok := productsByID[item.ID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ID] = product
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		BranchID:      branch.ID,
		SellerID:      sellerID,
		CustomerID:    in.CustomerID,
		Total:         decimal.Zero,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}
	var items []*entity.SaleItem

	err = uc.txRunner.RunSale(ctx, func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Cabecera primero: las líneas referencian sale_id.
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		total := decimal.Zero
		for _, item := range in.Items {
			product := productsByID[item.ID]

			// Bloquea la fila de stock; sin fila llega en cero.
			row, err := invRepo.GetForUpdate(branch.ID, product.ID)
			if err != nil {
				return err
			}
			if row.Stock < item.Qty {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Name)
			}
			row.Stock -= item.Qty
			row.UpdatedAt = now
			if err := invRepo.Upsert(row); err != nil {
				return err
			}

			// Fotografía del precio: cambios posteriores no alteran la línea.
			price := product.Price
			subtotal := price.Mul(decimal.NewFromInt(item.Qty))
			saleItem := &entity.SaleItem{
				ID:            uuid.New().String(),
				SaleID:        sale.ID,
				ProductID:     product.ID,
				Quantity:      item.Qty,
				PriceAtMoment: price,
				Subtotal:      subtotal,
			}
			if err := saleRepo.CreateItem(saleItem); err != nil {
				return err
			}
			items = append(items, saleItem)
			total = total.Add(subtotal)
		}
		sale.Total = total
		return saleRepo.UpdateTotal(sale)
	})
	if err != nil {
		items = nil
		return nil, fmt.Errorf("venta: %w", err)
	}
	return toSaleResponse(sale, items), nil
}

func (uc *CheckoutUseCase) resolveBranch(companyID, branchID string) (*entity.Branch, error) {
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

// GetSale devuelve una venta del tenant con sus líneas.
func (uc *CheckoutUseCase) GetSale(companyID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.saleRepo.GetItemsBySale(saleID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// ListSales ventas del tenant paginadas (sin líneas).
func (uc *CheckoutUseCase) ListSales(companyID string, limit, offset int) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range sales {
		out.Items = append(out.Items, *toSaleResponse(s, nil))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		BranchID:      s.BranchID,
		SellerID:      s.SellerID,
		CustomerID:    s.CustomerID,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
		CreatedAt:     s.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:            it.ID,
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			PriceAtMoment: it.PriceAtMoment,
			Subtotal:      it.Subtotal,
		})
	}
	return resp
}
