package quota_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/quota"
)

func planBasico() *entity.Plan {
	return &entity.Plan{Name: "Básico", MaxBranches: 1, MaxUsers: 5, MaxProducts: 500, MaxSuppliers: 5}
}

func planPremium() *entity.Plan {
	return &entity.Plan{Name: "Premium", MaxBranches: 999, MaxUsers: 999, MaxProducts: 999999, MaxSuppliers: 999}
}

// Propiedad central: AllowCreation == IsUnlimited || Current < Limit.
func TestAllowCreation_PlanBasicoUnaSucursal(t *testing.T) {
	limit := quota.LimitFor(planBasico(), quota.MetricBranches)
	assert.Equal(t, 1, limit)

	// 0 sucursales existentes -> puede crear la primera
	u := quota.BuildUsage(quota.MetricBranches, "Básico", 0, limit)
	assert.True(t, u.AllowCreation(), "con 0/1 debe permitirse crear")

	// 1 sucursal existente -> la segunda se rechaza
	u = quota.BuildUsage(quota.MetricBranches, "Básico", 1, limit)
	assert.False(t, u.AllowCreation(), "con 1/1 debe rechazarse")
}

func TestAllowCreation_SinPlanBloqueaTodo(t *testing.T) {
	for _, m := range []quota.Metric{quota.MetricBranches, quota.MetricUsers, quota.MetricProducts, quota.MetricSuppliers} {
		limit := quota.LimitFor(nil, m)
		assert.Equal(t, 0, limit, "Sin Plan debe tener límite 0 en %s", m)
		u := quota.BuildUsage(m, quota.PlanNameNone, 0, limit)
		assert.False(t, u.AllowCreation(), "Sin Plan no debe permitir crear %s", m)
		assert.Equal(t, 0.0, u.PercentUsed, "límite 0 reporta 0%%")
	}
}

func TestBuildUsage_LimiteIlimitado(t *testing.T) {
	limit := quota.LimitFor(planPremium(), quota.MetricSuppliers)
	u := quota.BuildUsage(quota.MetricSuppliers, "Premium", 12345, limit)
	assert.True(t, u.IsUnlimited, "límite >= 999 es ilimitado")
	assert.Equal(t, 0.0, u.PercentUsed, "ilimitado reporta 0%%")
	assert.True(t, u.AllowCreation())
}

func TestBuildUsage_PercentRecortadoA100(t *testing.T) {
	u := quota.BuildUsage(quota.MetricUsers, "Básico", 8, 5)
	assert.Equal(t, 100.0, u.PercentUsed, "el porcentaje se recorta a 100")
	assert.False(t, u.AllowCreation())
}

func TestBuildUsage_PercentProporcional(t *testing.T) {
	u := quota.BuildUsage(quota.MetricProducts, "Estándar", 250, 500)
	assert.InDelta(t, 50.0, u.PercentUsed, 0.001)
	assert.False(t, u.IsUnlimited, "límite bajo el umbral no es ilimitado")
	assert.True(t, u.AllowCreation())
}

func TestSuperAdminUsage(t *testing.T) {
	u := quota.SuperAdminUsage(quota.MetricBranches)
	assert.True(t, u.IsUnlimited)
	assert.Equal(t, quota.PlanNameSuperAdmin, u.PlanName)
	assert.True(t, u.AllowCreation())
}

func TestValidMetric(t *testing.T) {
	assert.True(t, quota.ValidMetric(quota.MetricProducts))
	assert.False(t, quota.ValidMetric(quota.Metric("sales")))
}
