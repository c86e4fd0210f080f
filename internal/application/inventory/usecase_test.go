package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/inventory"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct{ branchID, productID string }

// fakeInventoryRepo emula la creación perezosa: Get/GetForUpdate devuelven una
// fila en cero cuando no existe registro.
type fakeInventoryRepo struct{ rows map[invKey]*entity.Inventory }

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{rows: map[invKey]*entity.Inventory{}}
}

func (f *fakeInventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	if row, ok := f.rows[invKey{branchID, productID}]; ok {
		cp := *row
		return &cp, nil
	}
	return &entity.Inventory{BranchID: branchID, ProductID: productID, MinStock: entity.DefaultMinStock}, nil
}

func (f *fakeInventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	return f.Get(branchID, productID)
}

func (f *fakeInventoryRepo) Upsert(inv *entity.Inventory) error {
	cp := *inv
	f.rows[invKey{inv.BranchID, inv.ProductID}] = &cp
	return nil
}

func (f *fakeInventoryRepo) ListByBranch(branchID string, _, _ int) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for k, row := range f.rows {
		if k.branchID == branchID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner pasa el mismo repo; el commit/rollback real se prueba contra la DB.
type fakeTxRunner struct{ invRepo repository.InventoryRepository }

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.InventoryRepository) error) error {
	return fn(f.invRepo)
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }

type fakeBranchRepo struct {
	repository.BranchRepository
	branches []*entity.Branch
}

func (f *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) FirstByCompany(companyID string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.CompanyID == companyID {
			return b, nil
		}
	}
	return nil, nil
}

const (
	testCompanyID = "00000000-0000-0000-0000-0000000000c1"
	testBranchID  = "00000000-0000-0000-0000-0000000000b1"
	testProductID = "00000000-0000-0000-0000-0000000000p1"
)

func buildUseCase(branches ...*entity.Branch) (*inventory.UseCase, *fakeInventoryRepo) {
	invRepo := newFakeInventoryRepo()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, CompanyID: testCompanyID, SKU: "PARA-500", Name: "Paracetamol 500mg"},
	}}
	uc := inventory.NewUseCase(&fakeTxRunner{invRepo: invRepo}, invRepo, products, &fakeBranchRepo{branches: branches})
	return uc, invRepo
}

func mainBranch() *entity.Branch {
	return &entity.Branch{ID: testBranchID, CompanyID: testCompanyID, Name: "Casa Matriz"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// "add" sobre un producto sin fila de inventario la crea desde cero.
func TestAdjust_AddCreaFilaPerezosa(t *testing.T) {
	uc, _ := buildUseCase(mainBranch())

	out, err := uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "add", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Stock)
	assert.Equal(t, testBranchID, out.BranchID, "sin branch_id cae a la primera sucursal")
}

// "subtract" con stock suficiente descuenta; sin stock suficiente falla y no
// altera la fila.
func TestAdjust_SubtractEstricto(t *testing.T) {
	uc, invRepo := buildUseCase(mainBranch())

	_, err := uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "add", Quantity: 5})
	require.NoError(t, err)

	out, err := uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "subtract", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Stock)

	_, err = uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "subtract", Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	row, _ := invRepo.Get(testBranchID, testProductID)
	assert.Equal(t, int64(2), row.Stock, "el fallo no debe tocar el stock")
}

// Cantidad menor a 1 u operación desconocida son entrada inválida.
func TestAdjust_EntradaInvalida(t *testing.T) {
	uc, _ := buildUseCase(mainBranch())

	_, err := uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "add", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "merma", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Empresa sin sucursales: no hay dónde llevar stock.
func TestAdjust_SinSucursales(t *testing.T) {
	uc, _ := buildUseCase() // sin sucursales

	_, err := uc.Adjust(context.Background(), testCompanyID, testProductID,
		dto.StockAdjustmentRequest{Operation: "add", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNoBranch)
}

// Producto de otra empresa es invisible para el tenant.
func TestAdjust_ProductoDeOtraEmpresa(t *testing.T) {
	uc, _ := buildUseCase(mainBranch())

	_, err := uc.Adjust(context.Background(), "otra-empresa", testProductID,
		dto.StockAdjustmentRequest{Operation: "add", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// GetStock sin fila responde cero (lectura perezosa).
func TestGetStock_SinFilaRespondeCero(t *testing.T) {
	uc, _ := buildUseCase(mainBranch())

	out, err := uc.GetStock(testCompanyID, testProductID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Stock)
	assert.Equal(t, int64(entity.DefaultMinStock), out.MinStock)
	assert.True(t, out.LowStock)
}

// SetInitialStock carga a la primera sucursal; sin sucursales se omite.
func TestSetInitialStock(t *testing.T) {
	uc, invRepo := buildUseCase(mainBranch())
	require.NoError(t, uc.SetInitialStock(context.Background(), testCompanyID, testProductID, 25))
	row, _ := invRepo.Get(testBranchID, testProductID)
	assert.Equal(t, int64(25), row.Stock)

	ucEmpty, _ := buildUseCase()
	require.NoError(t, ucEmpty.SetInitialStock(context.Background(), testCompanyID, testProductID, 25),
		"sin sucursales el stock inicial se omite sin error")
}
