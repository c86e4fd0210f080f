package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL. En el checkout
// se construye sobre la tx activa (ver TxRunner.RunSale).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// customer_id es opcional: se guarda NULL cuando viene vacío.
const saleScanColumns = `id, company_id, branch_id, seller_id, COALESCE(customer_id::text, ''), total, payment_method, created_at`

// Create inserta la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, company_id, branch_id, seller_id, customer_id, total, payment_method, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.BranchID, sale.SellerID, sale.CustomerID,
		sale.Total, sale.PaymentMethod, sale.CreatedAt,
	)
	if err != nil {
		// FK caída: la sucursal o el cliente fueron borrados en paralelo.
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_moment, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.PriceAtMoment, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// UpdateTotal fija el total de la cabecera al cierre del checkout (misma tx).
func (r *SaleRepo) UpdateTotal(sale *entity.Sale) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET total = $2 WHERE id = $1`, sale.ID, sale.Total)
	if err != nil {
		return fmt.Errorf("update sale total: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT `+saleScanColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.CompanyID, &s.BranchID, &s.SellerID, &s.CustomerID,
		&s.Total, &s.PaymentMethod, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySale recupera las líneas de una venta.
func (r *SaleRepo) GetItemsBySale(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, price_at_moment, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.PriceAtMoment, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListByCompany lista ventas de una empresa, más recientes primero.
func (r *SaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleScanColumns + ` FROM sales WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.BranchID, &s.SellerID, &s.CustomerID,
			&s.Total, &s.PaymentMethod, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
