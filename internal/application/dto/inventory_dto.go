package dto

import "time"

// StockAdjustmentRequest entrada para mover stock manualmente.
// Operation: "add" ingresa, "subtract" descuenta (falla si no alcanza).
type StockAdjustmentRequest struct {
	BranchID  string `json:"branch_id" validate:"omitempty,uuid"`
	Operation string `json:"operation" validate:"required,oneof=add subtract"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// InventoryResponse salida de una fila de inventario.
type InventoryResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	ProductID string    `json:"product_id"`
	Stock     int64     `json:"stock"`
	MinStock  int64     `json:"min_stock"`
	LowStock  bool      `json:"low_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchInventoryResponse inventario de una sucursal.
type BranchInventoryResponse struct {
	BranchID string              `json:"branch_id"`
	Items    []InventoryResponse `json:"items"`
}
