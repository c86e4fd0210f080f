package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo implementación read-only de ReportsRepository sobre PostgreSQL.
// Todas las consultas agregan con COALESCE para devolver cero sin datos.
type ReportsRepo struct {
	q Querier
}

// NewReportsRepository construye el adaptador de reportes.
func NewReportsRepository(q Querier) *ReportsRepo {
	return &ReportsRepo{q: q}
}

// GetDashboard devuelve los KPIs agregados de la empresa.
func (r *ReportsRepo) GetDashboard(ctx context.Context, companyID string) (*repository.DashboardResult, error) {
	var res repository.DashboardResult

	salesQuery := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(SUM(total) FILTER (WHERE created_at >= CURRENT_DATE), 0),
			COALESCE(SUM(total) FILTER (WHERE created_at >= date_trunc('month', CURRENT_DATE)), 0)
		FROM sales
		WHERE company_id = $1`
	err := r.q.QueryRow(ctx, salesQuery, companyID).Scan(
		&res.SalesCount, &res.SalesTotal, &res.SalesToday, &res.SalesMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard sales: %w", err)
	}

	stockQuery := `
		SELECT
			COALESCE(SUM(i.stock), 0),
			COALESCE(SUM(i.stock * p.cost), 0),
			COUNT(*) FILTER (WHERE i.stock <= i.min_stock)
		FROM inventory i
		JOIN branches b ON b.id = i.branch_id
		JOIN products p ON p.id = i.product_id
		WHERE b.company_id = $1`
	err = r.q.QueryRow(ctx, stockQuery, companyID).Scan(
		&res.TotalStock, &res.InventoryValue, &res.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stock: %w", err)
	}
	return &res, nil
}

// GetStockByBranch devuelve el stock agregado por sucursal. Incluye
// sucursales sin registros de inventario (LEFT JOIN, agregados en cero).
func (r *ReportsRepo) GetStockByBranch(ctx context.Context, companyID string) ([]repository.StockByBranchResult, error) {
	query := `
		SELECT
			b.id,
			b.name,
			COALESCE(SUM(i.stock), 0),
			COUNT(i.product_id)
		FROM branches b
		LEFT JOIN inventory i ON i.branch_id = b.id
		WHERE b.company_id = $1
		GROUP BY b.id, b.name
		ORDER BY b.name ASC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("stock by branch: %w", err)
	}
	defer rows.Close()
	var results []repository.StockByBranchResult
	for rows.Next() {
		var row repository.StockByBranchResult
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.TotalStock, &row.Products); err != nil {
			return nil, fmt.Errorf("scan stock by branch: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSupplierPurchases resume las compras por proveedor en el rango dado.
func (r *ReportsRepo) GetSupplierPurchases(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) ([]repository.SupplierPurchasesResult, error) {
	query := `
		SELECT
			s.id,
			s.name,
			COUNT(p.id),
			COALESCE(SUM(p.total), 0)
		FROM purchases p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.company_id = $1 AND p.date BETWEEN $2 AND $3
		GROUP BY s.id, s.name
		ORDER BY SUM(p.total) DESC`
	rows, err := r.q.Query(ctx, query, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("supplier purchases: %w", err)
	}
	defer rows.Close()
	var results []repository.SupplierPurchasesResult
	for rows.Next() {
		var row repository.SupplierPurchasesResult
		if err := rows.Scan(&row.SupplierID, &row.SupplierName, &row.PurchaseCount, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan supplier purchases: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesBook devuelve las ventas del período ordenadas por fecha ascendente.
func (r *ReportsRepo) GetSalesBook(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) ([]repository.SalesBookEntry, error) {
	query := `
		SELECT
			s.id,
			s.created_at,
			COALESCE(c.rut, ''),
			COALESCE(c.name, ''),
			s.payment_method,
			(SELECT COUNT(*) FROM sale_items si WHERE si.sale_id = s.id),
			s.total
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.company_id = $1 AND s.created_at BETWEEN $2 AND $3
		ORDER BY s.created_at ASC`
	rows, err := r.q.Query(ctx, query, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("sales book: %w", err)
	}
	defer rows.Close()
	var entries []repository.SalesBookEntry
	for rows.Next() {
		var e repository.SalesBookEntry
		if err := rows.Scan(&e.SaleID, &e.CreatedAt, &e.CustomerRUT, &e.CustomerName,
			&e.PaymentMethod, &e.ItemCount, &e.Total); err != nil {
			return nil, fmt.Errorf("scan sales book entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
