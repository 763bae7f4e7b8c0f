package entity

import "github.com/shopspring/decimal"

// ReportPeriod granularidad declarada de un reporte.
type ReportPeriod string

const (
	ReportPeriodDay    ReportPeriod = "DAY"
	ReportPeriodWeek   ReportPeriod = "WEEK"
	ReportPeriodMonth  ReportPeriod = "MONTH"
	ReportPeriodYear   ReportPeriod = "YEAR"
	ReportPeriodCustom ReportPeriod = "CUSTOM"
)

// ReportPeriods lista ordenada de períodos.
var ReportPeriods = []ReportPeriod{
	ReportPeriodDay, ReportPeriodWeek, ReportPeriodMonth, ReportPeriodYear, ReportPeriodCustom,
}

// RevenueReport reporte derivado (no se persiste). Period, StartDate y EndDate
// son los valores recibidos, sin recalcular.
type RevenueReport struct {
	Period          ReportPeriod
	StartDate       string
	EndDate         string
	TotalRevenue    decimal.Decimal
	MaterialCosts   decimal.Decimal
	GrossMargin     decimal.Decimal
	GrossMarginRate decimal.Decimal // porcentaje: GrossMargin / TotalRevenue * 100
}
