package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/application/sales"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
	apphttp "github.com/farmapos/farmapos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el endpoint de checkout sobre Fiber
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct{ branchID, productID string }

type memInventoryRepo struct{ rows map[stockKey]*entity.Inventory }

func (m *memInventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	return m.GetForUpdate(branchID, productID)
}
func (m *memInventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	if row, ok := m.rows[stockKey{branchID, productID}]; ok {
		cp := *row
		return &cp, nil
	}
	return &entity.Inventory{BranchID: branchID, ProductID: productID, MinStock: entity.DefaultMinStock}, nil
}
func (m *memInventoryRepo) Upsert(inv *entity.Inventory) error {
	cp := *inv
	m.rows[stockKey{inv.BranchID, inv.ProductID}] = &cp
	return nil
}
func (m *memInventoryRepo) ListByBranch(string, int, int) ([]*entity.Inventory, error) {
	return nil, nil
}

type memSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]*entity.SaleItem
}

func (m *memSaleRepo) Create(s *entity.Sale) error { cp := *s; m.sales[s.ID] = &cp; return nil }
func (m *memSaleRepo) CreateItem(it *entity.SaleItem) error {
	cp := *it
	m.items[it.SaleID] = append(m.items[it.SaleID], &cp)
	return nil
}
func (m *memSaleRepo) UpdateTotal(s *entity.Sale) error {
	if stored, ok := m.sales[s.ID]; ok {
		stored.Total = s.Total
	}
	return nil
}
func (m *memSaleRepo) GetByID(id string) (*entity.Sale, error) { return m.sales[id], nil }
func (m *memSaleRepo) GetItemsBySale(id string) ([]*entity.SaleItem, error) {
	return m.items[id], nil
}
func (m *memSaleRepo) ListByCompany(string, int, int) ([]*entity.Sale, error) { return nil, nil }

type memTxRunner struct {
	invRepo  *memInventoryRepo
	saleRepo *memSaleRepo
}

func (m *memTxRunner) RunSale(_ context.Context, fn func(repository.InventoryRepository, repository.SaleRepository) error) error {
	invSnap := make(map[stockKey]*entity.Inventory, len(m.invRepo.rows))
	for k, v := range m.invRepo.rows {
		cp := *v
		invSnap[k] = &cp
	}
	salesSnap := make(map[string]*entity.Sale, len(m.saleRepo.sales))
	for k, v := range m.saleRepo.sales {
		cp := *v
		salesSnap[k] = &cp
	}
	if err := fn(m.invRepo, m.saleRepo); err != nil {
		m.invRepo.rows = invSnap
		m.saleRepo.sales = salesSnap
		return err
	}
	return nil
}

type memProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) { return m.products[id], nil }

type memBranchRepo struct {
	repository.BranchRepository
	branch *entity.Branch
}

func (m *memBranchRepo) GetByID(id string) (*entity.Branch, error) {
	if m.branch != nil && m.branch.ID == id {
		return m.branch, nil
	}
	return nil, nil
}
func (m *memBranchRepo) FirstByCompany(companyID string) (*entity.Branch, error) {
	if m.branch != nil && m.branch.CompanyID == companyID {
		return m.branch, nil
	}
	return nil, nil
}

type memCustomerRepo struct{ repository.CustomerRepository }

func (m *memCustomerRepo) GetByID(string) (*entity.Customer, error) { return nil, nil }

// checkoutApp monta POST /api/sales/checkout con auth real y repos en memoria:
// una sucursal, Paracetamol $1500 x10 y Jarabe $2500 x2.
func checkoutApp(t *testing.T) (*fiber.App, *memInventoryRepo) {
	t.Helper()
	const branchID = "00000000-0000-0000-0000-00000000000b"

	invRepo := &memInventoryRepo{rows: map[stockKey]*entity.Inventory{
		{branchID, "p1"}: {ID: "i1", BranchID: branchID, ProductID: "p1", Stock: 10, MinStock: 5},
		{branchID, "p2"}: {ID: "i2", BranchID: branchID, ProductID: "p2", Stock: 2, MinStock: 5},
	}}
	saleRepo := &memSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]*entity.SaleItem{}}
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", CompanyID: testCompanyID, Name: "Paracetamol 500mg", Price: decimal.NewFromInt(1500)},
		"p2": {ID: "p2", CompanyID: testCompanyID, Name: "Jarabe para la tos", Price: decimal.NewFromInt(2500)},
	}}
	branchRepo := &memBranchRepo{branch: &entity.Branch{ID: branchID, CompanyID: testCompanyID, Name: "Casa Matriz"}}

	uc := sales.NewCheckoutUseCase(
		&memTxRunner{invRepo: invRepo, saleRepo: saleRepo},
		saleRepo, productRepo, branchRepo, &memCustomerRepo{},
	)

	app := fiber.New()
	handler := apphttp.NewSaleHandler(uc, nil)
	app.Post("/api/sales/checkout", apphttp.AuthMiddleware(testJWTSecret), handler.Checkout)
	return app, invRepo
}

func postCheckout(t *testing.T, app *fiber.App, token string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/sales/checkout", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del contrato de POST /api/sales/checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckoutEndpoint_VentaExitosa(t *testing.T) {
	app, invRepo := checkoutApp(t)
	token := tokenForRole(t, "vendedor")

	resp := postCheckout(t, app, token, fiber.Map{
		"items": []fiber.Map{
			{"id": "p1", "qty": 2},
			{"id": "p2", "qty": 1},
		},
		"payment_method": "cash",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		SaleID  string `json:"sale_id"`
		ID      string `json:"id"`
		Total   string `json:"total"`
		Items   []struct {
			ProductID string `json:"product_id"`
			Subtotal  string `json:"subtotal"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, body.ID, body.SaleID)
	assert.Equal(t, "5500", body.Total, "2*1500 + 1*2500 = 5500")
	assert.Len(t, body.Items, 2)

	// El stock quedó descontado en la sucursal
	row, err := invRepo.Get("00000000-0000-0000-0000-00000000000b", "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), row.Stock)
}

func TestCheckoutEndpoint_StockInsuficiente_Retorna409(t *testing.T) {
	app, invRepo := checkoutApp(t)
	token := tokenForRole(t, "vendedor")

	// p2 solo tiene 2 unidades
	resp := postCheckout(t, app, token, fiber.Map{
		"items": []fiber.Map{
			{"id": "p1", "qty": 1},
			{"id": "p2", "qty": 5},
		},
		"payment_method": "cash",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
	assert.Contains(t, string(body), "Jarabe para la tos",
		"el error debe nombrar el producto sin stock")

	// Rollback: ni siquiera la línea válida descontó stock
	row, err := invRepo.Get("00000000-0000-0000-0000-00000000000b", "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), row.Stock)
}

func TestCheckoutEndpoint_CarritoVacio_Retorna400(t *testing.T) {
	app, _ := checkoutApp(t)
	token := tokenForRole(t, "vendedor")

	resp := postCheckout(t, app, token, fiber.Map{
		"items":          []fiber.Map{},
		"payment_method": "cash",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMPTY_CART")
}

func TestCheckoutEndpoint_MedioDePagoInvalido_Retorna400(t *testing.T) {
	app, _ := checkoutApp(t)
	token := tokenForRole(t, "vendedor")

	resp := postCheckout(t, app, token, fiber.Map{
		"items":          []fiber.Map{{"id": "p1", "qty": 1}},
		"payment_method": "cheque",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutEndpoint_SinToken_Retorna401(t *testing.T) {
	app, _ := checkoutApp(t)

	resp := postCheckout(t, app, "", fiber.Map{
		"items":          []fiber.Map{{"id": "p1", "qty": 1}},
		"payment_method": "cash",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
