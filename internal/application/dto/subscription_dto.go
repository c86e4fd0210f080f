package dto

import "time"

// SubscribeRequest entrada para suscribir la empresa a un plan. Si ya existe
// una suscripción, se reemplaza el plan y se reinicia la ventana de 30 días.
type SubscribeRequest struct {
	PlanID string `json:"plan_id" validate:"required,uuid"`
}

// SubscriptionResponse salida de la suscripción vigente de una empresa.
type SubscriptionResponse struct {
	ID        string       `json:"id"`
	CompanyID string       `json:"company_id"`
	Plan      PlanResponse `json:"plan"`
	StartDate time.Time    `json:"start_date"`
	EndDate   time.Time    `json:"end_date"`
	IsActive  bool         `json:"is_active"`
}

// QuotaUsageResponse uso de cupo de una métrica para el tenant.
type QuotaUsageResponse struct {
	Metric      string  `json:"metric"`
	PlanName    string  `json:"plan_name"`
	Current     int     `json:"current"`
	Limit       int     `json:"limit"`
	PercentUsed float64 `json:"percent_used"`
	IsUnlimited bool    `json:"is_unlimited"`
}

// QuotaOverviewResponse uso de cupo de las cuatro métricas.
type QuotaOverviewResponse struct {
	PlanName string               `json:"plan_name"`
	Metrics  []QuotaUsageResponse `json:"metrics"`
}
