package subscription_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/subscription"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSubRepo struct{ byCompany map[string]*entity.Subscription }

func newFakeSubRepo() *fakeSubRepo { return &fakeSubRepo{byCompany: map[string]*entity.Subscription{}} }

func (f *fakeSubRepo) GetByCompany(id string) (*entity.Subscription, error) {
	return f.byCompany[id], nil
}
func (f *fakeSubRepo) Upsert(s *entity.Subscription) error { f.byCompany[s.CompanyID] = s; return nil }
func (f *fakeSubRepo) Delete(id string) error              { delete(f.byCompany, id); return nil }

type fakePlanRepo struct{ byID map[string]*entity.Plan }

func (f *fakePlanRepo) Create(p *entity.Plan) error            { f.byID[p.ID] = p; return nil }
func (f *fakePlanRepo) GetByID(id string) (*entity.Plan, error) { return f.byID[id], nil }
func (f *fakePlanRepo) Update(p *entity.Plan) error            { f.byID[p.ID] = p; return nil }
func (f *fakePlanRepo) List() ([]*entity.Plan, error)          { return nil, nil }
func (f *fakePlanRepo) Delete(id string) error                 { delete(f.byID, id); return nil }

type fakeCompanyRepo struct{ company *entity.Company }

func (f *fakeCompanyRepo) Create(*entity.Company) error             { return nil }
func (f *fakeCompanyRepo) GetByID(string) (*entity.Company, error)  { return f.company, nil }
func (f *fakeCompanyRepo) GetByRUT(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error             { return nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Delete(string) error                      { return nil }

const testCompanyID = "00000000-0000-0000-0000-000000000001"

func buildUseCase(plans ...*entity.Plan) (*subscription.UseCase, *fakeSubRepo) {
	planRepo := &fakePlanRepo{byID: map[string]*entity.Plan{}}
	for _, p := range plans {
		planRepo.byID[p.ID] = p
	}
	subs := newFakeSubRepo()
	company := &entity.Company{ID: testCompanyID, Name: "Farmacia El Sol", Status: entity.CompanyStatusActive}
	return subscription.NewUseCase(subs, planRepo, &fakeCompanyRepo{company: company}), subs
}

func plan(id, name string, price int64) *entity.Plan {
	return &entity.Plan{ID: id, Name: name, MaxBranches: 1, MaxUsers: 3, MaxProducts: 100, MaxSuppliers: 5, Price: decimal.NewFromInt(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Suscribirse crea la fila con ventana de 30 días y la deja activa.
func TestSubscribe_CreaSuscripcionActiva(t *testing.T) {
	uc, _ := buildUseCase(plan("plan-basico", "Básico", 19990))

	out, err := uc.Subscribe(testCompanyID, dto.SubscribeRequest{PlanID: "plan-basico"})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.Equal(t, "Básico", out.Plan.Name)
	assert.WithinDuration(t, out.StartDate.AddDate(0, 0, 30), out.EndDate, time.Second,
		"la ventana debe ser de 30 días")
}

// Resuscribirse a otro plan reemplaza el plan y reinicia la ventana; sigue
// existiendo una sola fila por empresa.
func TestSubscribe_CambioDePlanReiniciaVentana(t *testing.T) {
	uc, subs := buildUseCase(plan("plan-basico", "Básico", 19990), plan("plan-premium", "Premium", 49990))

	_, err := uc.Subscribe(testCompanyID, dto.SubscribeRequest{PlanID: "plan-basico"})
	require.NoError(t, err)
	first := subs.byCompany[testCompanyID]
	firstID := first.ID

	out, err := uc.Subscribe(testCompanyID, dto.SubscribeRequest{PlanID: "plan-premium"})
	require.NoError(t, err)
	assert.Equal(t, "Premium", out.Plan.Name)
	assert.True(t, out.IsActive)

	require.Len(t, subs.byCompany, 1, "una empresa nunca tiene dos suscripciones")
	assert.Equal(t, firstID, subs.byCompany[testCompanyID].ID, "se reutiliza la misma fila")
	assert.Equal(t, "plan-premium", subs.byCompany[testCompanyID].PlanID)
}

// Resuscribirse tras cancelar reactiva la fila existente.
func TestSubscribe_ReactivaTrasCancelar(t *testing.T) {
	uc, subs := buildUseCase(plan("plan-basico", "Básico", 19990))

	_, err := uc.Subscribe(testCompanyID, dto.SubscribeRequest{PlanID: "plan-basico"})
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(testCompanyID))
	assert.False(t, subs.byCompany[testCompanyID].IsActive)

	out, err := uc.Subscribe(testCompanyID, dto.SubscribeRequest{PlanID: "plan-basico"})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

// Plan inexistente retorna ErrNotFound.
func TestSubscribe_PlanInexistente(t *testing.T) {
	uc, _ := buildUseCase(plan("plan-basico", "Básico", 19990))

	_, err := uc.Subscribe(testCompanyID, dto.SubscribeRequest{PlanID: "plan-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Get sin suscripción previa retorna ErrNotFound; Cancel también.
func TestGetYCancel_SinSuscripcion(t *testing.T) {
	uc, _ := buildUseCase(plan("plan-basico", "Básico", 19990))

	_, err := uc.Get(testCompanyID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Cancel(testCompanyID), domain.ErrNotFound)
}
