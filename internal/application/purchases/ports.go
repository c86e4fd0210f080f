package purchases

import (
	"context"

	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de inventario, compras y productos (para recalcular el costo
// promedio en la misma tx que el ingreso de stock).
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error) error
}
