package dto

import "github.com/shopspring/decimal"

// DashboardResponse KPIs del panel de una empresa.
type DashboardResponse struct {
	SalesCount     int             `json:"sales_count"`
	SalesTotal     decimal.Decimal `json:"sales_total"`
	SalesToday     decimal.Decimal `json:"sales_today"`
	SalesMonth     decimal.Decimal `json:"sales_month"`
	TotalStock     int64           `json:"total_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	LowStockCount  int             `json:"low_stock_count"`
}

// StockByBranchResponse stock agregado de una sucursal.
type StockByBranchResponse struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	TotalStock int64  `json:"total_stock"`
	Products   int    `json:"products"`
}

// SupplierPurchasesResponse resumen de compras por proveedor.
type SupplierPurchasesResponse struct {
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	PurchaseCount int             `json:"purchase_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// DateRangeRequest rango de fechas para reportes (query params YYYY-MM-DD).
type DateRangeRequest struct {
	StartDate string `query:"start_date" validate:"required"`
	EndDate   string `query:"end_date" validate:"required"`
}
