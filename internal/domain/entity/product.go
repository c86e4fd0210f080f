package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
// (CompanyID, SKU) es único; la violación se traduce a domain.ErrDuplicateSKU.
// Cost es costo promedio ponderado, recalculado al registrar compras.
type Product struct {
	ID          string
	CompanyID   string
	CategoryID  string // opcional, vacío si no tiene categoría
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, CLP sin decimales
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
