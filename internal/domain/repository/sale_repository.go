package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y SaleItem.
// Las ventas son inmutables: solo creación (dentro de la tx de checkout) y lectura.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	// UpdateTotal fija el total de la cabecera al cierre del checkout (misma tx).
	UpdateTotal(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySale(saleID string) ([]*entity.SaleItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error)
}
