package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
	"github.com/farmapos/farmapos-api/pkg/jwt"
	"github.com/farmapos/farmapos-api/pkg/rut"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de tenant y login.
type AuthUseCase struct {
	txRunner    TxRunner
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner TxRunner, userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterTenant da de alta una empresa y su primer usuario admin_cliente en
// una sola transacción: o quedan ambos, o ninguno. Valida el RUT chileno y
// rechaza RUT o email ya registrados. La empresa nace sin plan: toda creación
// queda bloqueada hasta suscribirse.
func (uc *AuthUseCase) RegisterTenant(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := rut.Validate(in.CompanyRUT); err != nil {
		return nil, domain.ErrInvalidRUT
	}
	if existing, _ := uc.companyRepo.GetByRUT(in.CompanyRUT); existing != nil {
		return nil, domain.ErrRUTAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		RUT:       in.CompanyRUT,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    entity.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleAdminCliente,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunSignup(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		// Si el email chocó en una carrera, el rollback borra también la empresa.
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Token:   token,
		Company: *toCompanyResponse(company),
		User:    *toUserResponse(user),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
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

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		RUT:       c.RUT,
		Address:   c.Address,
		Phone:     c.Phone,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
