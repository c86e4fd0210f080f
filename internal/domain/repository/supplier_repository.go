package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
	// CountByCompany cuenta proveedores del tenant (métrica de cupo "suppliers").
	CountByCompany(companyID string) (int, error)
}
