package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	dquota "github.com/farmapos/farmapos-api/internal/domain/quota"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
	"github.com/farmapos/farmapos-api/pkg/rut"
)

// UserUseCase casos de uso para el equipo del tenant. La creación pasa por el
// cupo "users" del plan.
type UserUseCase struct {
	repo  repository.UserRepository
	quota QuotaChecker
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, quota QuotaChecker) *UserUseCase {
	return &UserUseCase{repo: repo, quota: quota}
}

// Create crea un usuario del equipo si el plan tiene cupo. El rol debe ser
// del backoffice (nunca super_admin); el email es único global.
func (uc *UserUseCase) Create(companyID, role string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := uc.quota.CheckCreation(companyID, role, dquota.MetricUsers); err != nil {
		return nil, err
	}
	if in.Role == entity.RoleSuperAdmin || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if err := rut.Validate(in.RUT); err != nil {
		return nil, domain.ErrInvalidRUT
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		RUT:          in.RUT,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario del tenant.
func (uc *UserUseCase) GetByID(companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update actualiza nombre, rol o estado de un usuario del tenant.
func (uc *UserUseCase) Update(companyID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if *in.Role == entity.RoleSuperAdmin || !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista el equipo del tenant con paginación.
func (uc *UserUseCase) List(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un usuario del tenant.
func (uc *UserUseCase) Delete(companyID, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		RUT:       u.RUT,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
