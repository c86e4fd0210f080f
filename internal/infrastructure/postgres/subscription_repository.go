package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación de SubscriptionRepository sobre PostgreSQL.
// company_id es UNIQUE: el upsert garantiza una sola fila por empresa.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador de suscripciones. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// GetByCompany obtiene la suscripción de una empresa, o nil si nunca se suscribió.
func (r *SubscriptionRepo) GetByCompany(companyID string) (*entity.Subscription, error) {
	query := `
		SELECT id, company_id, plan_id, start_date, end_date, is_active, created_at, updated_at
		FROM subscriptions WHERE company_id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la suscripción de la empresa (ON CONFLICT company_id).
func (r *SubscriptionRepo) Upsert(sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, company_id, plan_id, start_date, end_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id)
		DO UPDATE SET plan_id = EXCLUDED.plan_id, start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date, is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.CompanyID, sub.PlanID, sub.StartDate, sub.EndDate, sub.IsActive, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

// Delete elimina la suscripción de una empresa.
func (r *SubscriptionRepo) Delete(companyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subscriptions WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
