package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago válidos para Sale.PaymentMethod.
const (
	PaymentCash     = "cash"
	PaymentDebit    = "debit"
	PaymentCredit   = "credit"
	PaymentTransfer = "transfer"
)

// ValidPaymentMethod informa si el medio de pago pertenece al conjunto cerrado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentTransfer:
		return true
	}
	return false
}

// Sale es la cabecera de una venta de punto de venta. Se crea junto a sus
// ítems en una sola transacción y nunca se muta después.
type Sale struct {
	ID            string
	CompanyID     string
	BranchID      string
	SellerID      string
	CustomerID    string // opcional
	Total         decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
}

// SaleItem es una línea de venta. PriceAtMoment es una fotografía inmutable
// del precio del producto al momento de la venta; cambios posteriores de
// precio no la alteran.
type SaleItem struct {
	ID            string
	SaleID        string
	ProductID     string
	Quantity      int64 // >= 1
	PriceAtMoment decimal.Decimal
	Subtotal      decimal.Decimal
}
