package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/reports"
)

// ReportHandler reportes de lectura del tenant.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      KPIs del panel: ventas, valor de inventario, stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockByBranch godoc
// @Summary      Stock agregado por sucursal
// @Description  Disponible solo para planes multi-sucursal.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockByBranchResponse
// @Failure      403  {object}  dto.ErrorResponse  "el plan no incluye desglose por sucursal"
// @Router       /api/reports/stock-by-branch [get]
func (h *ReportHandler) StockByBranch(c *fiber.Ctx) error {
	out, err := h.uc.StockByBranch(c.Context(), GetCompanyID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SupplierPurchases godoc
// @Summary      Resumen de compras por proveedor en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD (inclusive)"
// @Success      200  {array}   dto.SupplierPurchasesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/supplier-purchases [get]
func (h *ReportHandler) SupplierPurchases(c *fiber.Ctx) error {
	in := dto.DateRangeRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	out, err := h.uc.SupplierPurchases(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesBook godoc
// @Summary      Libro de ventas del mes en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        year   query  int  true  "Año (ej. 2026)"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200  {string}  string  "XML del libro de ventas"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-book [get]
func (h *ReportHandler) SalesBook(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	xmlBytes, err := h.uc.SalesBookXML(c.Context(), GetCompanyID(c), year, month)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(xmlBytes)
}
