package sales

import (
	"context"

	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de inventario y ventas. Si fn retorna error se hace rollback:
// o se persiste la venta completa con todos sus descuentos de stock, o nada.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
