package usecase

import dquota "github.com/farmapos/farmapos-api/internal/domain/quota"

// QuotaChecker verifica el cupo del plan antes de crear un recurso.
// Lo implementa quota.Resolver.
type QuotaChecker interface {
	CheckCreation(companyID, role string, metric dquota.Metric) error
}
