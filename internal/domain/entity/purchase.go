package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es la cabecera de una compra a proveedor. Registrarla ingresa
// stock a la sucursal y recalcula el costo promedio de los productos.
type Purchase struct {
	ID            string
	CompanyID     string
	SupplierID    string
	BranchID      string
	UserID        string
	InvoiceNumber string
	Date          time.Time // no futura
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// PurchaseItem es una línea de compra.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64 // >= 1
	UnitCost   decimal.Decimal
}
