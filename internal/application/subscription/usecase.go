// Package subscription maneja la suscripción única de cada empresa a un plan.
package subscription

import (
	"time"

	"github.com/google/uuid"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// PeriodDays duración de la ventana de suscripción al (re)suscribirse.
const PeriodDays = 30

// UseCase casos de uso de suscripción: suscribir, consultar, cancelar.
type UseCase struct {
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.PlanRepository
	companyRepo      repository.CompanyRepository
}

// NewUseCase construye el caso de uso de suscripciones.
func NewUseCase(
	subscriptionRepo repository.SubscriptionRepository,
	planRepo repository.PlanRepository,
	companyRepo repository.CompanyRepository,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		companyRepo:      companyRepo,
	}
}

// Subscribe suscribe la empresa al plan. Si ya había suscripción (activa o no)
// se reemplaza el plan y se reinicia la ventana de 30 días; nunca quedan dos
// filas para la misma empresa.
func (uc *UseCase) Subscribe(companyID string, in dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	plan, err := uc.planRepo.GetByID(in.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sub, err := uc.subscriptionRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = &entity.Subscription{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			CreatedAt: now,
		}
	}
	sub.PlanID = plan.ID
	sub.StartDate = now
	sub.EndDate = now.AddDate(0, 0, PeriodDays)
	sub.IsActive = true
	sub.UpdatedAt = now
	if err := uc.subscriptionRepo.Upsert(sub); err != nil {
		return nil, err
	}
	return toResponse(sub, plan), nil
}

// Get devuelve la suscripción vigente de la empresa, o ErrNotFound si nunca
// se ha suscrito.
func (uc *UseCase) Get(companyID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subscriptionRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	plan, err := uc.planRepo.GetByID(sub.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(sub, plan), nil
}

// Cancel desactiva la suscripción (IsActive=false). La fila se conserva para
// que una resuscripción reutilice la empresa.
func (uc *UseCase) Cancel(companyID string) error {
	sub, err := uc.subscriptionRepo.GetByCompany(companyID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	sub.IsActive = false
	sub.UpdatedAt = time.Now()
	return uc.subscriptionRepo.Upsert(sub)
}

func toResponse(sub *entity.Subscription, plan *entity.Plan) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:        sub.ID,
		CompanyID: sub.CompanyID,
		Plan: dto.PlanResponse{
			ID:           plan.ID,
			Name:         plan.Name,
			MaxBranches:  plan.MaxBranches,
			MaxUsers:     plan.MaxUsers,
			MaxProducts:  plan.MaxProducts,
			MaxSuppliers: plan.MaxSuppliers,
			Price:        plan.Price,
			CreatedAt:    plan.CreatedAt,
			UpdatedAt:    plan.UpdatedAt,
		},
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
		IsActive:  sub.IsActive,
	}
}
