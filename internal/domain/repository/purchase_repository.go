package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para compras a proveedores.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	GetByID(id string) (*entity.Purchase, error)
	GetItemsByPurchase(purchaseID string) ([]*entity.PurchaseItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Purchase, error)
}
