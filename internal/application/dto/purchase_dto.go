package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest una línea de compra a proveedor.
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int64           `json:"quantity" validate:"required,min=1"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest entrada para registrar una compra: ingresa stock a la
// sucursal y recalcula el costo promedio de cada producto.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id" validate:"required,uuid"`
	BranchID      string                `json:"branch_id" validate:"omitempty,uuid"`
	InvoiceNumber string                `json:"invoice_number"`
	Date          time.Time             `json:"date"`
	Items         []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseItemResponse una línea de compra persistida.
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// PurchaseResponse salida de una compra con sus líneas.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	CompanyID     string                 `json:"company_id"`
	SupplierID    string                 `json:"supplier_id"`
	BranchID      string                 `json:"branch_id"`
	InvoiceNumber string                 `json:"invoice_number"`
	Date          time.Time              `json:"date"`
	Total         decimal.Decimal        `json:"total"`
	Items         []PurchaseItemResponse `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
}

// PurchaseListResponse lista paginada de compras (sin líneas).
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
