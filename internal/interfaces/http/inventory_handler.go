package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmapos/farmapos-api/internal/application/inventory"
)

// InventoryHandler lecturas de inventario por sucursal.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListByBranch godoc
// @Summary      Listar inventario de una sucursal
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branch_id  path   string  true   "ID de la sucursal"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.BranchInventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/branches/{branch_id} [get]
func (h *InventoryHandler) ListByBranch(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.uc.ListByBranch(GetCompanyID(c), c.Params("branch_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
