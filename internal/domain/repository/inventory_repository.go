package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// InventoryRepository define el puerto para el stock por (sucursal, producto).
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	// Get devuelve la fila o una fila en cero si no existe (creación perezosa).
	Get(branchID, productID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(branchID, productID string) (*entity.Inventory, error)
	Upsert(inv *entity.Inventory) error
	ListByBranch(branchID string, limit, offset int) ([]*entity.Inventory, error)
}
