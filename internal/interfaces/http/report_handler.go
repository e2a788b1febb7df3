package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
)

// ReportHandler maneja los rankings de ventas.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopClients GET /api/reports/top-clients
func (h *ReportHandler) TopClients(c *fiber.Ctx) error {
	rows, err := h.uc.TopClients(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// TopSellers GET /api/reports/top-sellers
func (h *ReportHandler) TopSellers(c *fiber.Ctx) error {
	rows, err := h.uc.TopSellers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
