package auth

import (
	"context"

	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de empresas y usuarios. Si fn retorna error se hace rollback:
// o quedan empresa y admin creados juntos, o ninguno.
type TxRunner interface {
	RunSignup(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
