package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResult resultado crudo de los KPIs del panel de un tenant.
// Lo produce la DB; el use case lo convierte en DTO.
type DashboardResult struct {
	SalesCount     int             // Total histórico de ventas de la empresa
	SalesTotal     decimal.Decimal // Suma histórica de totales de venta
	SalesToday     decimal.Decimal // Suma de ventas del día (zona horaria del servidor)
	SalesMonth     decimal.Decimal // Suma de ventas del mes en curso
	TotalStock     int64           // Suma de stock en todas las sucursales
	InventoryValue decimal.Decimal // Σ stock * costo promedio del producto
	LowStockCount  int             // Productos bajo su stock mínimo
}

// StockByBranchResult stock agregado de una sucursal.
type StockByBranchResult struct {
	BranchID   string
	BranchName string
	TotalStock int64
	Products   int // Productos distintos con registro de inventario
}

// SupplierPurchasesResult resumen de compras por proveedor en un período.
type SupplierPurchasesResult struct {
	SupplierID    string
	SupplierName  string
	PurchaseCount int
	TotalAmount   decimal.Decimal
}

// SalesBookEntry una venta del libro de ventas (export XML).
type SalesBookEntry struct {
	SaleID        string
	CreatedAt     time.Time
	CustomerRUT   string // Vacío si la venta no tiene cliente asociado
	CustomerName  string // Vacío si no hay cliente; el export lo rotula "Consumidor Final"
	PaymentMethod string
	ItemCount     int
	Total         decimal.Decimal
}

// ReportsRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportsRepository interface {
	// GetDashboard devuelve los KPIs agregados de la empresa.
	// Usa COALESCE para devolver cero cuando no hay datos.
	GetDashboard(ctx context.Context, companyID string) (*DashboardResult, error)

	// GetStockByBranch devuelve el stock agregado por sucursal.
	GetStockByBranch(ctx context.Context, companyID string) ([]StockByBranchResult, error)

	// GetSupplierPurchases resume las compras por proveedor en el rango dado.
	GetSupplierPurchases(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) ([]SupplierPurchasesResult, error)

	// GetSalesBook devuelve las ventas del período ordenadas por fecha
	// ascendente, para el export del libro de ventas.
	GetSalesBook(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) ([]SalesBookEntry, error)
}
