// Package reports expone los reportes de lectura del tenant: panel de KPIs,
// stock por sucursal, compras por proveedor y libro de ventas.
package reports

import (
	"context"
	"time"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/domain"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
	"github.com/farmapos/farmapos-api/internal/infrastructure/salesbook"
)

// UseCase casos de uso de reportes (solo lectura).
type UseCase struct {
	reportsRepo      repository.ReportsRepository
	companyRepo      repository.CompanyRepository
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.PlanRepository
	bookBuilder      *salesbook.BuilderService
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	reportsRepo repository.ReportsRepository,
	companyRepo repository.CompanyRepository,
	subscriptionRepo repository.SubscriptionRepository,
	planRepo repository.PlanRepository,
	bookBuilder *salesbook.BuilderService,
) *UseCase {
	return &UseCase{
		reportsRepo:      reportsRepo,
		companyRepo:      companyRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		bookBuilder:      bookBuilder,
	}
}

// Dashboard KPIs agregados de la empresa.
func (uc *UseCase) Dashboard(ctx context.Context, companyID string) (*dto.DashboardResponse, error) {
	res, err := uc.reportsRepo.GetDashboard(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		SalesCount:     res.SalesCount,
		SalesTotal:     res.SalesTotal,
		SalesToday:     res.SalesToday,
		SalesMonth:     res.SalesMonth,
		TotalStock:     res.TotalStock,
		InventoryValue: res.InventoryValue,
		LowStockCount:  res.LowStockCount,
	}, nil
}

// StockByBranch stock agregado por sucursal. Disponible solo para planes
// multi-sucursal (super_admin siempre puede).
func (uc *UseCase) StockByBranch(ctx context.Context, companyID, role string) ([]dto.StockByBranchResponse, error) {
	if role != entity.RoleSuperAdmin {
		ok, err := uc.multiBranchPlan(companyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrForbidden
		}
	}
	rows, err := uc.reportsRepo.GetStockByBranch(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockByBranchResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockByBranchResponse{
			BranchID:   r.BranchID,
			BranchName: r.BranchName,
			TotalStock: r.TotalStock,
			Products:   r.Products,
		})
	}
	return out, nil
}

// SupplierPurchases resumen de compras por proveedor en el rango.
func (uc *UseCase) SupplierPurchases(ctx context.Context, companyID string, in dto.DateRangeRequest) ([]dto.SupplierPurchasesResponse, error) {
	start, end, err := parseRange(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportsRepo.GetSupplierPurchases(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierPurchasesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SupplierPurchasesResponse{
			SupplierID:    r.SupplierID,
			SupplierName:  r.SupplierName,
			PurchaseCount: r.PurchaseCount,
			TotalAmount:   r.TotalAmount,
		})
	}
	return out, nil
}

// multiBranchPlan informa si el plan vigente permite más de una sucursal.
func (uc *UseCase) multiBranchPlan(companyID string) (bool, error) {
	sub, err := uc.subscriptionRepo.GetByCompany(companyID)
	if err != nil {
		return false, err
	}
	if sub == nil || !sub.IsActive {
		return false, nil
	}
	plan, err := uc.planRepo.GetByID(sub.PlanID)
	if err != nil {
		return false, err
	}
	if plan == nil {
		return false, nil
	}
	return plan.MaxBranches > 1, nil
}

// SalesBookXML genera el XML del libro de ventas del mes indicado.
func (uc *UseCase) SalesBookXML(ctx context.Context, companyID string, year, month int) ([]byte, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.reportsRepo.GetSalesBook(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	return uc.bookBuilder.Build(company, start, end, entries)
}

// parseRange interpreta start_date/end_date (YYYY-MM-DD); el fin es inclusivo
// hasta el último instante del día.
func parseRange(in dto.DateRangeRequest) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
