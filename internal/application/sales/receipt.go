package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// ReceiptLine línea de la boleta lista para imprimir (con nombre de producto
// ya resuelto).
type ReceiptLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptPDFGenerator genera la representación en PDF de una boleta de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		company *entity.Company,
		branch *entity.Branch,
		lines []ReceiptLine,
	) ([]byte, error)
}

// ReceiptUseCase arma la boleta de una venta: junta cabecera, líneas con
// nombres de producto, empresa y sucursal, y delega el render al generador.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
	companyRepo repository.CompanyRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	companyRepo repository.CompanyRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		branchRepo:  branchRepo,
		companyRepo: companyRepo,
		generator:   generator,
	}
}

// ReceiptPDF genera la boleta en PDF de una venta del tenant.
func (uc *ReceiptUseCase) ReceiptPDF(ctx context.Context, companyID, saleID string) ([]byte, error) {
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

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(sale.BranchID)
	if err != nil {
		return nil, err
	}

	items, err := uc.saleRepo.GetItemsBySale(saleID)
	if err != nil {
		return nil, err
	}
	lines := make([]ReceiptLine, 0, len(items))
	for _, it := range items {
		name := it.ProductID
		if product, err := uc.productRepo.GetByID(it.ProductID); err == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.PriceAtMoment,
			Subtotal:    it.Subtotal,
		})
	}

	return uc.generator.GenerateReceiptPDF(ctx, sale, company, branch, lines)
}
