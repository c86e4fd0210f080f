package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error)
	Delete(id string) error
	// CountByCompany cuenta sucursales del tenant (métrica de cupo "branches").
	CountByCompany(companyID string) (int, error)
	// FirstByCompany devuelve la sucursal más antigua del tenant, o nil si no hay.
	// Usada como destino por defecto de stock inicial y ajustes manuales.
	FirstByCompany(companyID string) (*entity.Branch, error)
}
