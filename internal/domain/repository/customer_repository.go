package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes finales.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndRUT(companyID, rut string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
