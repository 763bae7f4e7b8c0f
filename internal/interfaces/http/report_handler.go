package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/revenue"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// ReportHandler expone el reporte de ingresos en JSON y PDF (protegido).
type ReportHandler struct {
	uc *revenue.RevenueUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *revenue.RevenueUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Revenue godoc
// @Summary      Reporte de ingresos, costo de materiales y margen bruto
// @Description  Solo cuentan las ventas (SALE) con fecha dentro de [start_date, end_date].
//
//	Sin fechas se usa la ventana del período que contiene el instante actual;
//	CUSTOM exige ambas fechas.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "DAY, WEEK, MONTH, YEAR o CUSTOM (default CUSTOM)"
// @Param        start_date  query  string  false  "Inicio ISO 8601"
// @Param        end_date    query  string  false  "Fin ISO 8601"
// @Success      200  {object}  dto.RevenueReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/revenue [get]
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	var q dto.RevenueReportQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	report, err := h.uc.Compute(c.UserContext(), q.Period, q.StartDate, q.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToRevenueReportResponse(report))
}

// RevenuePDF godoc
// @Summary      Reporte de ingresos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period      query  string  false  "DAY, WEEK, MONTH, YEAR o CUSTOM (default CUSTOM)"
// @Param        start_date  query  string  false  "Inicio ISO 8601"
// @Param        end_date    query  string  false  "Fin ISO 8601"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/revenue/pdf [get]
func (h *ReportHandler) RevenuePDF(c *fiber.Ctx) error {
	var q dto.RevenueReportQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	pdf, report, err := h.uc.ExportPDF(c.UserContext(), q.Period, q.StartDate, q.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="revenue-%s.pdf"`, strings.ToLower(string(report.Period))))
	return c.Send(pdf)
}
