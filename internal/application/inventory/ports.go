package inventory

import (
	"context"

	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de inventario atado a esa tx. Garantiza que el read-modify-write
// del stock sea atómico (SELECT FOR UPDATE + UPDATE en la misma tx).
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error
}
