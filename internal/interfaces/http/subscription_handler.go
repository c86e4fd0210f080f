package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/quota"
	"github.com/farmapos/farmapos-api/internal/application/subscription"
	"github.com/farmapos/farmapos-api/internal/application/usecase"
)

// SubscriptionHandler maneja la suscripción del tenant, el catálogo de planes
// y el panel de cupos.
type SubscriptionHandler struct {
	uc     *subscription.UseCase
	planUC *usecase.PlanUseCase
	quota  *quota.Resolver
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *subscription.UseCase, planUC *usecase.PlanUseCase, quota *quota.Resolver) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, planUC: planUC, quota: quota}
}

// ListPlans godoc
// @Summary      Listar planes disponibles
// @Tags         subscription
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlanListResponse
// @Router       /api/plans [get]
func (h *SubscriptionHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.planUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Suscripción vigente de la empresa
// @Tags         subscription
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse  "la empresa nunca se ha suscrito"
// @Router       /api/subscription [get]
func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Subscribe godoc
// @Summary      Suscribir o cambiar de plan
// @Description  Reemplaza el plan vigente y reinicia la ventana de 30 días.
// @Tags         subscription
// @Security     Bearer
// @Produce      json
// @Param        plan_id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription/{plan_id} [post]
func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	out, err := h.uc.Subscribe(GetCompanyID(c), dto.SubscribeRequest{PlanID: c.Params("plan_id")})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar la suscripción vigente
// @Tags         subscription
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subscription [delete]
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuotaOverview godoc
// @Summary      Uso de cupos del plan (sucursales, usuarios, productos, proveedores)
// @Tags         subscription
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QuotaOverviewResponse
// @Router       /api/subscription/quota [get]
func (h *SubscriptionHandler) QuotaOverview(c *fiber.Ctx) error {
	out, err := h.quota.Overview(GetCompanyID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
