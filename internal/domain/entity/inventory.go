package entity

import "time"

// DefaultMinStock umbral inicial para reporte de stock bajo.
const DefaultMinStock = 5

// Inventory representa el stock de un producto en una sucursal.
// Única por (BranchID, ProductID); se crea perezosamente con stock 0.
// Invariante: Stock nunca queda negativo en reposo (CHECK en la tabla y
// verificación en el libro de inventario).
type Inventory struct {
	ID        string
	BranchID  string
	ProductID string
	Stock     int64
	MinStock  int64
	UpdatedAt time.Time
}

// IsLowStock informa si la fila está en o bajo su umbral de reposición.
func (i *Inventory) IsLowStock() bool {
	return i.Stock <= i.MinStock
}
