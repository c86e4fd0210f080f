package repository

import (
	"github.com/shopspring/decimal"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCost actualiza solo el costo promedio (usado al registrar compras).
	UpdateCost(productID string, cost decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// CountByCompany cuenta productos del tenant (métrica de cupo "products").
	CountByCompany(companyID string) (int, error)
}
