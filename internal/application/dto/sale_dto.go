package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest una línea del carrito.
type CheckoutItemRequest struct {
	ID  string `json:"id" validate:"required,uuid"`
	Qty int64  `json:"qty" validate:"required,min=1"`
}

// CheckoutRequest entrada del checkout de punto de venta. BranchID es
// opcional: sin él se vende contra la primera sucursal de la empresa.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
	BranchID      string                `json:"branch_id" validate:"omitempty,uuid"`
	CustomerID    string                `json:"customer_id" validate:"omitempty,uuid"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=cash debit credit transfer"`
}

// SaleItemResponse una línea de venta persistida.
type SaleItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	Quantity      int64           `json:"quantity"`
	PriceAtMoment decimal.Decimal `json:"price_at_moment"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	BranchID      string             `json:"branch_id"`
	SellerID      string             `json:"seller_id"`
	CustomerID    string             `json:"customer_id,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// CheckoutResponse salida del checkout: confirma el commit y repite el id de
// la venta junto a la venta completa.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	SaleID  string `json:"sale_id"`
	SaleResponse
}

// SaleListResponse lista paginada de ventas (sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
