package repository

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// SubscriptionRepository define el puerto para la suscripción única por empresa.
// Upsert reemplaza la fila existente (una empresa nunca tiene dos suscripciones).
type SubscriptionRepository interface {
	GetByCompany(companyID string) (*entity.Subscription, error)
	Upsert(sub *entity.Subscription) error
	Delete(companyID string) error
}
