package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
// La fila es única por (branch_id, product_id) y se crea perezosamente: Get y
// GetForUpdate devuelven una fila en cero cuando no existe registro.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, branch_id, product_id, stock, min_stock, updated_at`

// zeroRow fila perezosa para (sucursal, producto) sin registro.
func zeroRow(branchID, productID string) *entity.Inventory {
	return &entity.Inventory{
		BranchID:  branchID,
		ProductID: productID,
		Stock:     0,
		MinStock:  entity.DefaultMinStock,
	}
}

// Get obtiene el stock de un producto en una sucursal, o una fila en cero.
func (r *InventoryRepo) Get(branchID, productID string) (*entity.Inventory, error) {
	return r.get(branchID, productID, false)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
// La fila perezosa no bloquea nada: el Upsert posterior resuelve el conflicto.
func (r *InventoryRepo) GetForUpdate(branchID, productID string) (*entity.Inventory, error) {
	return r.get(branchID, productID, true)
}

func (r *InventoryRepo) get(branchID, productID string, forUpdate bool) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE branch_id = $1 AND product_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, branchID, productID).Scan(
		&inv.ID, &inv.BranchID, &inv.ProductID, &inv.Stock, &inv.MinStock, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroRow(branchID, productID), nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Upsert inserta o actualiza la fila de inventario por (sucursal, producto).
func (r *InventoryRepo) Upsert(inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory (id, branch_id, product_id, stock, min_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (branch_id, product_id)
		DO UPDATE SET stock = EXCLUDED.stock, min_stock = EXCLUDED.min_stock, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.BranchID, inv.ProductID, inv.Stock, inv.MinStock,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByBranch lista el inventario de una sucursal con paginación.
func (r *InventoryRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE branch_id = $1 ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.BranchID, &inv.ProductID, &inv.Stock, &inv.MinStock, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
