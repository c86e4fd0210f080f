// Package quota resuelve el uso real de cupos de un tenant contra su plan
// vigente. La aritmética pura vive en internal/domain/quota; aquí se consulta
// la DB (conteos y suscripción) y se decide si una creación procede.
package quota

import (
	"fmt"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	dquota "github.com/farmapos/farmapos-api/internal/domain/quota"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// Resolver resuelve uso de cupo por métrica para una empresa.
type Resolver struct {
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.PlanRepository
	branchRepo       repository.BranchRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	supplierRepo     repository.SupplierRepository
}

// NewResolver construye el resolver de cupos.
func NewResolver(
	subscriptionRepo repository.SubscriptionRepository,
	planRepo repository.PlanRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *Resolver {
	return &Resolver{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		branchRepo:       branchRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		supplierRepo:     supplierRepo,
	}
}

// activePlan devuelve el plan vigente de la empresa, o nil si no tiene
// suscripción activa (estado "Sin Plan": todo límite queda en 0).
func (r *Resolver) activePlan(companyID string) (*entity.Plan, error) {
	sub, err := r.subscriptionRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if sub == nil || !sub.IsActive {
		return nil, nil
	}
	return r.planRepo.GetByID(sub.PlanID)
}

// count devuelve el conteo actual de la métrica para la empresa.
func (r *Resolver) count(companyID string, metric dquota.Metric) (int, error) {
	switch metric {
	case dquota.MetricBranches:
		return r.branchRepo.CountByCompany(companyID)
	case dquota.MetricUsers:
		return r.userRepo.CountByCompany(companyID)
	case dquota.MetricProducts:
		return r.productRepo.CountByCompany(companyID)
	case dquota.MetricSuppliers:
		return r.supplierRepo.CountByCompany(companyID)
	}
	return 0, domain.ErrInvalidInput
}

// ResolveUsage calcula el uso de una métrica. role super_admin no cuenta
// contra ningún plan (ilimitado sintético).
func (r *Resolver) ResolveUsage(companyID, role string, metric dquota.Metric) (dquota.Usage, error) {
	if !dquota.ValidMetric(metric) {
		return dquota.Usage{}, domain.ErrInvalidInput
	}
	if role == entity.RoleSuperAdmin {
		return dquota.SuperAdminUsage(metric), nil
	}
	plan, err := r.activePlan(companyID)
	if err != nil {
		return dquota.Usage{}, err
	}
	planName := dquota.PlanNameNone
	if plan != nil {
		planName = plan.Name
	}
	current, err := r.count(companyID, metric)
	if err != nil {
		return dquota.Usage{}, err
	}
	return dquota.BuildUsage(metric, planName, current, dquota.LimitFor(plan, metric)), nil
}

// CheckCreation verifica que quepa un recurso más de la métrica dada.
// Devuelve ErrQuotaExceeded con plan y uso actual si el cupo está agotado.
func (r *Resolver) CheckCreation(companyID, role string, metric dquota.Metric) error {
	usage, err := r.ResolveUsage(companyID, role, metric)
	if err != nil {
		return err
	}
	if !usage.AllowCreation() {
		return fmt.Errorf("%w: el plan %s permite %d de %s y ya hay %d",
			domain.ErrQuotaExceeded, usage.PlanName, usage.Limit, metric, usage.Current)
	}
	return nil
}

// Overview arma el uso de las cuatro métricas para el panel del tenant.
func (r *Resolver) Overview(companyID, role string) (*dto.QuotaOverviewResponse, error) {
	metrics := []dquota.Metric{
		dquota.MetricBranches,
		dquota.MetricUsers,
		dquota.MetricProducts,
		dquota.MetricSuppliers,
	}
	out := &dto.QuotaOverviewResponse{Metrics: make([]dto.QuotaUsageResponse, 0, len(metrics))}
	for _, m := range metrics {
		usage, err := r.ResolveUsage(companyID, role, m)
		if err != nil {
			return nil, err
		}
		out.PlanName = usage.PlanName
		out.Metrics = append(out.Metrics, toUsageResponse(usage))
	}
	return out, nil
}

func toUsageResponse(u dquota.Usage) dto.QuotaUsageResponse {
	return dto.QuotaUsageResponse{
		Metric:      string(u.Metric),
		PlanName:    u.PlanName,
		Current:     u.Current,
		Limit:       u.Limit,
		PercentUsed: u.PercentUsed,
		IsUnlimited: u.IsUnlimited,
	}
}
