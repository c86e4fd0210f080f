package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmapos/farmapos-api/internal/application/dto"
	"github.com/farmapos/farmapos-api/internal/application/sales"
)

// SaleHandler maneja el checkout de punto de venta y la lectura de ventas.
type SaleHandler struct {
	checkoutUC *sales.CheckoutUseCase
	receiptUC  *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(checkoutUC *sales.CheckoutUseCase, receiptUC *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{checkoutUC: checkoutUC, receiptUC: receiptUC}
}

// Checkout godoc
// @Summary      Procesar venta (checkout)
// @Description  Descuenta el stock y persiste la venta en una sola transacción; cualquier fallo revierte todo.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrito: items [{id, qty}], branch_id opcional, payment_method"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse  "EMPTY_CART / VALIDATION"
// @Failure      404   {object}  dto.ErrorResponse  "producto ajeno o inexistente"
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK (incluye el nombre del producto)"
// @Router       /api/sales/checkout [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.checkoutUC.Checkout(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{
		Success:      true,
		SaleID:       out.ID,
		SaleResponse: *out,
	})
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse  "venta de otra empresa"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.checkoutUC.GetSale(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas de la empresa
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.checkoutUC.ListSales(GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Boleta de la venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt.pdf [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.ReceiptPDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="boleta.pdf"`)
	return c.Send(pdfBytes)
}
