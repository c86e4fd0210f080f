// Package quota contiene la aritmética pura de cupos por plan (servicio de
// dominio, sin I/O). El cálculo de uso real contra la DB vive en
// internal/application/quota.
package quota

import "github.com/farmapos/farmapos-api/internal/domain/entity"

// Metric identifica un tipo de recurso contado contra el plan.
type Metric string

const (
	MetricBranches  Metric = "branches"
	MetricUsers     Metric = "users"
	MetricProducts  Metric = "products"
	MetricSuppliers Metric = "suppliers"
)

// ValidMetric informa si la métrica pertenece al conjunto cerrado.
func ValidMetric(m Metric) bool {
	switch m {
	case MetricBranches, MetricUsers, MetricProducts, MetricSuppliers:
		return true
	}
	return false
}

// UnlimitedThreshold: un límite >= 999 se interpreta como "ilimitado".
const UnlimitedThreshold = 999

// Nombres de plan sintéticos para estados sin plan real.
const (
	PlanNameNone       = "Sin Plan"
	PlanNameSuperAdmin = "SuperAdmin"
)

// Usage describe el consumo de una métrica contra su límite de plan.
type Usage struct {
	Metric      Metric
	PlanName    string
	Current     int
	Limit       int
	PercentUsed float64
	IsUnlimited bool
}

// AllowCreation informa si cabe un recurso más bajo este uso.
func (u Usage) AllowCreation() bool {
	return u.IsUnlimited || u.Current < u.Limit
}

// LimitFor devuelve el límite de la métrica según el plan. Plan nil = Sin Plan,
// límite 0 para todas las métricas (bloquea creación).
func LimitFor(plan *entity.Plan, metric Metric) int {
	if plan == nil {
		return 0
	}
	switch metric {
	case MetricBranches:
		return plan.MaxBranches
	case MetricUsers:
		return plan.MaxUsers
	case MetricProducts:
		return plan.MaxProducts
	case MetricSuppliers:
		return plan.MaxSuppliers
	}
	return 0
}

// BuildUsage arma el Usage para un conteo y un límite dados.
// percent = min(100, current/limit*100) con límite > 0; 0 si el límite es 0 o ilimitado.
func BuildUsage(metric Metric, planName string, current, limit int) Usage {
	unlimited := limit >= UnlimitedThreshold
	percent := 0.0
	if !unlimited && limit > 0 {
		percent = float64(current) / float64(limit) * 100
		if percent > 100 {
			percent = 100
		}
	}
	return Usage{
		Metric:      metric,
		PlanName:    planName,
		Current:     current,
		Limit:       limit,
		PercentUsed: percent,
		IsUnlimited: unlimited,
	}
}

// SuperAdminUsage: el operador de plataforma no cuenta contra ningún plan.
func SuperAdminUsage(metric Metric) Usage {
	return Usage{
		Metric:      metric,
		PlanName:    PlanNameSuperAdmin,
		Current:     0,
		Limit:       UnlimitedThreshold,
		PercentUsed: 0,
		IsUnlimited: true,
	}
}
