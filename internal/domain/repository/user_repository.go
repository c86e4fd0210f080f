package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// CountByCompany cuenta usuarios del tenant (métrica de cupo "users").
	CountByCompany(companyID string) (int, error)
}
