package purchases_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/purchases"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct{ branchID, productID string }

type fakeInventoryRepo struct{ rows map[invKey]*entity.Inventory }

func (f *fakeInventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	return f.GetForUpdate(branchID, productID)
}
func (f *fakeInventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	if row, ok := f.rows[invKey{branchID, productID}]; ok {
		cp := *row
		return &cp, nil
	}
	return &entity.Inventory{BranchID: branchID, ProductID: productID, MinStock: entity.DefaultMinStock}, nil
}
func (f *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	cp := *inv
	f.rows[invKey{inv.BranchID, inv.ProductID}] = &cp
	return nil
}
func (f *fakeInventoryRepo) ListByBranch(string, int, int) ([]*entity.Inventory, error) {
	return nil, nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
	items     map[string][]*entity.PurchaseItem
}

func (f *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	f.purchases[p.ID] = &cp
	return nil
}
func (f *fakePurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	cp := *it
	f.items[it.PurchaseID] = append(f.items[it.PurchaseID], &cp)
	return nil
}
func (f *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) { return f.purchases[id], nil }
func (f *fakePurchaseRepo) GetItemsByPurchase(id string) ([]*entity.PurchaseItem, error) {
	return f.items[id], nil
}
func (f *fakePurchaseRepo) ListByCompany(string, int, int) ([]*entity.Purchase, error) {
	return nil, nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProductRepo) UpdateCost(id string, cost decimal.Decimal) error {
	if p, ok := f.products[id]; ok {
		p.Cost = cost
	}
	return nil
}

type fakeSupplierRepo struct {
	repository.SupplierRepository
	supplier *entity.Supplier
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if f.supplier != nil && f.supplier.ID == id {
		return f.supplier, nil
	}
	return nil, nil
}

type fakeBranchRepo struct {
	repository.BranchRepository
	branch *entity.Branch
}

func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	if f.branch != nil && f.branch.ID == id {
		return f.branch, nil
	}
	return nil, nil
}
func (f *fakeBranchRepo) FirstByCompany(companyID string) (*entity.Branch, error) {
	if f.branch != nil && f.branch.CompanyID == companyID {
		return f.branch, nil
	}
	return nil, nil
}

type fakeTxRunner struct {
	invRepo      *fakeInventoryRepo
	purchaseRepo *fakePurchaseRepo
	productRepo  *fakeProductRepo
}

func (f *fakeTxRunner) RunPurchase(_ context.Context, fn func(
	repository.InventoryRepository, repository.PurchaseRepository, repository.ProductRepository,
) error) error {
	return fn(f.invRepo, f.purchaseRepo, f.productRepo)
}

const (
	testCompanyID  = "00000000-0000-0000-0000-0000000000c1"
	testBranchID   = "00000000-0000-0000-0000-0000000000b1"
	testUserID     = "00000000-0000-0000-0000-0000000000e1"
	testSupplierID = "00000000-0000-0000-0000-0000000000s1"
	testProductID  = "00000000-0000-0000-0000-0000000000p1"
)

type fixture struct {
	uc       *purchases.UseCase
	invRepo  *fakeInventoryRepo
	products *fakeProductRepo
}

// buildFixture deja el producto con stock 10 a costo promedio $1.000.
func buildFixture() *fixture {
	invRepo := &fakeInventoryRepo{rows: map[invKey]*entity.Inventory{
		{testBranchID, testProductID}: {BranchID: testBranchID, ProductID: testProductID, Stock: 10, MinStock: 5},
	}}
	purchaseRepo := &fakePurchaseRepo{purchases: map[string]*entity.Purchase{}, items: map[string][]*entity.PurchaseItem{}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, CompanyID: testCompanyID, SKU: "PARA-500", Name: "Paracetamol 500mg", Cost: decimal.NewFromInt(1000)},
	}}
	uc := purchases.NewUseCase(
		&fakeTxRunner{invRepo: invRepo, purchaseRepo: purchaseRepo, productRepo: products},
		purchaseRepo, products,
		&fakeSupplierRepo{supplier: &entity.Supplier{ID: testSupplierID, CompanyID: testCompanyID, Name: "Droguería Andina"}},
		&fakeBranchRepo{branch: &entity.Branch{ID: testBranchID, CompanyID: testCompanyID, Name: "Casa Matriz"}},
	)
	return &fixture{uc: uc, invRepo: invRepo, products: products}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Comprar 10 unidades a $2.000 con 10 en stock a $1.000 deja costo promedio
// $1.500, stock 20 y total $20.000.
func TestCreate_IngresaStockYPromediaCosto(t *testing.T) {
	fx := buildFixture()

	out, err := fx.uc.Create(context.Background(), testCompanyID, testUserID, dto.CreatePurchaseRequest{
		SupplierID:    testSupplierID,
		InvoiceNumber: "F-001234",
		Items: []dto.PurchaseItemRequest{
			{ProductID: testProductID, Quantity: 10, UnitCost: decimal.NewFromInt(2000)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, testBranchID, out.BranchID, "sin branch_id ingresa a la primera sucursal")

	row, _ := fx.invRepo.Get(testBranchID, testProductID)
	assert.Equal(t, int64(20), row.Stock)
	assert.True(t, fx.products.products[testProductID].Cost.Equal(decimal.NewFromInt(1500)),
		"costo promedio ponderado: (10*1000 + 10*2000) / 20")
}

// Fecha futura se rechaza.
func TestCreate_FechaFutura(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Create(context.Background(), testCompanyID, testUserID, dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		Date:       time.Now().Add(48 * time.Hour),
		Items: []dto.PurchaseItemRequest{
			{ProductID: testProductID, Quantity: 1, UnitCost: decimal.NewFromInt(1000)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin líneas, cantidad cero o costo negativo: entrada inválida.
func TestCreate_LineasInvalidas(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Create(context.Background(), testCompanyID, testUserID, dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.Create(context.Background(), testCompanyID, testUserID, dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: testProductID, Quantity: 0, UnitCost: decimal.NewFromInt(100)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.Create(context.Background(), testCompanyID, testUserID, dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: testProductID, Quantity: 1, UnitCost: decimal.NewFromInt(-5)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Proveedor de otra empresa es invisible.
func TestCreate_ProveedorAjeno(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Create(context.Background(), "otra-empresa", testUserID, dto.CreatePurchaseRequest{
		SupplierID: testSupplierID,
		Items:      []dto.PurchaseItemRequest{{ProductID: testProductID, Quantity: 1, UnitCost: decimal.NewFromInt(100)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
