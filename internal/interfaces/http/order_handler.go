package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP de pedidos.
type OrderHandler struct {
	placeUC *orders.PlaceOrderUseCase
	uc      *orders.OrderUseCase
	pdfUC   *orders.PDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(placeUC *orders.PlaceOrderUseCase, uc *orders.OrderUseCase, pdfUC *orders.PDFUseCase) *OrderHandler {
	return &OrderHandler{placeUC: placeUC, uc: uc, pdfUC: pdfUC}
}

// Place POST /api/orders — coloca el pedido reservando stock por renglón.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.placeUC.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListBySeller GET /api/orders/seller[?status=PENDING] — pedidos del vendedor,
// opcionalmente filtrados por estado.
func (h *OrderHandler) ListBySeller(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if status := c.Query("status"); status != "" {
		list, err := h.uc.ListBySellerAndStatus(sellerID, status)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
	list, err := h.uc.ListBySeller(sellerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/orders/:id — solo el vendedor dueño.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Update PUT /api/orders/:id — solo el vendedor dueño.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Delete DELETE /api/orders/:id — devuelve la entidad eliminada.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	order, err := h.uc.Delete(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// DownloadPDF GET /api/orders/:id/pdf — hoja de pedido imprimible.
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadOrderPDF(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
