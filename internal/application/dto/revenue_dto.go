package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// RevenueReportQuery parámetros de GET /api/reports/revenue.
// Sin fechas se usa la ventana del período que contiene el instante actual.
type RevenueReportQuery struct {
	Period    string `query:"period"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// RevenueReportResponse reporte de ingresos; los importes se redondean a 2 decimales.
type RevenueReportResponse struct {
	Period          string          `json:"period"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	MaterialCosts   decimal.Decimal `json:"materialCosts"`
	GrossMargin     decimal.Decimal `json:"grossMargin"`
	GrossMarginRate decimal.Decimal `json:"grossMarginRate"` // porcentaje
}

func ToRevenueReportResponse(r *entity.RevenueReport) RevenueReportResponse {
	return RevenueReportResponse{
		Period:          string(r.Period),
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalRevenue:    r.TotalRevenue.Round(2),
		MaterialCosts:   r.MaterialCosts.Round(2),
		GrossMargin:     r.GrossMargin.Round(2),
		GrossMarginRate: r.GrossMarginRate.Round(2),
	}
}
