package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/sales"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con rollback simulado
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

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]*entity.SaleItem
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { cp := *s; f.sales[s.ID] = &cp; return nil }
func (f *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	cp := *it
	f.items[it.SaleID] = append(f.items[it.SaleID], &cp)
	return nil
}
func (f *fakeSaleRepo) UpdateTotal(s *entity.Sale) error {
	if stored, ok := f.sales[s.ID]; ok {
		stored.Total = s.Total
	}
	return nil
}
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return f.sales[id], nil }
func (f *fakeSaleRepo) GetItemsBySale(id string) ([]*entity.SaleItem, error) {
	return f.items[id], nil
}
func (f *fakeSaleRepo) ListByCompany(string, int, int) ([]*entity.Sale, error) { return nil, nil }

// fakeTxRunner clona el estado antes de fn y lo restaura si fn falla,
// emulando el rollback de la transacción real.
type fakeTxRunner struct {
	invRepo  *fakeInventoryRepo
	saleRepo *fakeSaleRepo
}

func (f *fakeTxRunner) RunSale(_ context.Context, fn func(repository.InventoryRepository, repository.SaleRepository) error) error {
	invSnap := make(map[invKey]*entity.Inventory, len(f.invRepo.rows))
	for k, v := range f.invRepo.rows {
		cp := *v
		invSnap[k] = &cp
	}
	salesSnap := make(map[string]*entity.Sale, len(f.saleRepo.sales))
	for k, v := range f.saleRepo.sales {
		cp := *v
		salesSnap[k] = &cp
	}
	itemsSnap := make(map[string][]*entity.SaleItem, len(f.saleRepo.items))
	for k, v := range f.saleRepo.items {
		itemsSnap[k] = append([]*entity.SaleItem(nil), v...)
	}
	if err := fn(f.invRepo, f.saleRepo); err != nil {
		f.invRepo.rows = invSnap
		f.saleRepo.sales = salesSnap
		f.saleRepo.items = itemsSnap
		return err
	}
	return nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }

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

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customer *entity.Customer
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if f.customer != nil && f.customer.ID == id {
		return f.customer, nil
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "00000000-0000-0000-0000-0000000000c1"
	testBranchID  = "00000000-0000-0000-0000-0000000000b1"
	testSellerID  = "00000000-0000-0000-0000-0000000000e1"

	paracetamolID = "00000000-0000-0000-0000-0000000000p1"
	ibuprofenoID  = "00000000-0000-0000-0000-0000000000p2"
)

type fixture struct {
	uc       *sales.CheckoutUseCase
	invRepo  *fakeInventoryRepo
	saleRepo *fakeSaleRepo
	products *fakeProductRepo
}

// buildFixture deja Paracetamol ($1.500, stock 10) e Ibuprofeno ($2.500,
// stock 4) en la sucursal de prueba.
func buildFixture() *fixture {
	invRepo := &fakeInventoryRepo{rows: map[invKey]*entity.Inventory{
		{testBranchID, paracetamolID}: {BranchID: testBranchID, ProductID: paracetamolID, Stock: 10, MinStock: 5},
		{testBranchID, ibuprofenoID}:  {BranchID: testBranchID, ProductID: ibuprofenoID, Stock: 4, MinStock: 5},
	}}
	saleRepo := &fakeSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]*entity.SaleItem{}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		paracetamolID: {ID: paracetamolID, CompanyID: testCompanyID, SKU: "PARA-500", Name: "Paracetamol 500mg", Price: decimal.NewFromInt(1500)},
		ibuprofenoID:  {ID: ibuprofenoID, CompanyID: testCompanyID, SKU: "IBU-400", Name: "Ibuprofeno 400mg", Price: decimal.NewFromInt(2500)},
	}}
	branch := &entity.Branch{ID: testBranchID, CompanyID: testCompanyID, Name: "Casa Matriz"}
	uc := sales.NewCheckoutUseCase(
		&fakeTxRunner{invRepo: invRepo, saleRepo: saleRepo},
		saleRepo, products, &fakeBranchRepo{branch: branch}, &fakeCustomerRepo{},
	)
	return &fixture{uc: uc, invRepo: invRepo, saleRepo: saleRepo, products: products}
}

func (fx *fixture) stock(productID string) int64 {
	row, _ := fx.invRepo.Get(testBranchID, productID)
	return row.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Checkout feliz: 2 Paracetamol + 1 Ibuprofeno = $5.500, stock descontado,
// precio fotografiado en cada línea.
func TestCheckout_VentaCompleta(t *testing.T) {
	fx := buildFixture()

	out, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ID: paracetamolID, Qty: 2},
			{ID: ibuprofenoID, Qty: 1},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.NewFromInt(5500)), "total = 2*1500 + 1*2500")
	assert.Equal(t, testBranchID, out.BranchID, "sin branch_id vende contra la primera sucursal")
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].PriceAtMoment.Equal(decimal.NewFromInt(1500)))
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(3000)))

	assert.Equal(t, int64(8), fx.stock(paracetamolID))
	assert.Equal(t, int64(3), fx.stock(ibuprofenoID))

	stored := fx.saleRepo.sales[out.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(5500)))
}

// Atomicidad: si la segunda línea no tiene stock, no queda venta ni descuento
// de la primera.
func TestCheckout_RollbackPorStockInsuficiente(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ID: paracetamolID, Qty: 2},
			{ID: ibuprofenoID, Qty: 5}, // stock 4
		},
		PaymentMethod: entity.PaymentDebit,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Ibuprofeno 400mg",
		"el error debe nombrar el producto sin stock")

	assert.Equal(t, int64(10), fx.stock(paracetamolID), "rollback: nada se descuenta")
	assert.Equal(t, int64(4), fx.stock(ibuprofenoID))
	assert.Empty(t, fx.saleRepo.sales, "rollback: no queda venta persistida")
}

// La fotografía de precio es inmutable: subir el precio después de la venta
// no altera la línea guardada.
func TestCheckout_PrecioFotografiadoInmutable(t *testing.T) {
	fx := buildFixture()

	out, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ID: paracetamolID, Qty: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	fx.products.products[paracetamolID].Price = decimal.NewFromInt(9900)

	fetched, err := fx.uc.GetSale(testCompanyID, out.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.True(t, fetched.Items[0].PriceAtMoment.Equal(decimal.NewFromInt(1500)),
		"la línea conserva el precio al momento de la venta")
}

// Sin medio de pago explícito la venta sale en efectivo.
func TestCheckout_MedioDePagoPorDefectoEfectivo(t *testing.T) {
	fx := buildFixture()

	out, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ID: paracetamolID, Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, out.PaymentMethod)
	assert.Equal(t, entity.PaymentCash, fx.saleRepo.sales[out.ID].PaymentMethod)
}

// Carrito vacío, medio de pago desconocido y cantidad inválida.
func TestCheckout_EntradasInvalidas(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items: nil, PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ID: paracetamolID, Qty: 1}},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ID: paracetamolID, Qty: 0}},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente o de otra empresa: ErrNotFound antes de abrir la tx.
func TestCheckout_ProductoInexistente(t *testing.T) {
	fx := buildFixture()

	_, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ID: "producto-fantasma", Qty: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.saleRepo.sales)
}

// GetSale de otra empresa: ErrForbidden (aislamiento de tenant).
func TestGetSale_OtraEmpresa(t *testing.T) {
	fx := buildFixture()

	out, err := fx.uc.Checkout(context.Background(), testCompanyID, testSellerID, dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ID: paracetamolID, Qty: 1}},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	_, err = fx.uc.GetSale("otra-empresa", out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
