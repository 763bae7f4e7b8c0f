// Package revenue calcula el reporte de ingresos y margen bruto de un rango de fechas.
package revenue

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	calc "github.com/jhoicas/atelier-api/internal/domain/revenue"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

const (
	msgStartDate = "startDate must be a valid ISO 8601 string"
	msgEndDate   = "endDate must be a valid ISO 8601 string"
)

// ComputeRevenue valida las fechas, lee actividades y productos en paralelo y agrega
// las ventas de [start, end]. Period, startDate y endDate se devuelven tal cual.
// Las fechas inválidas se rechazan antes de leer datos; los errores de lectura se
// devuelven sin envolver.
func ComputeRevenue(
	ctx context.Context,
	activityRepo repository.ActivityRepository,
	productRepo repository.ProductRepository,
	period entity.ReportPeriod,
	startDateISO, endDateISO string,
) (*entity.RevenueReport, error) {
	start, ok := calc.ParseISODate(startDateISO)
	if !ok {
		return nil, domain.NewValidationError(msgStartDate)
	}
	end, ok := calc.ParseISODate(endDateISO)
	if !ok {
		return nil, domain.NewValidationError(msgEndDate)
	}

	// Lecturas independientes en paralelo
	type activitiesResult struct {
		rows []*entity.Activity
		err  error
	}
	type productsResult struct {
		rows []*entity.Product
		err  error
	}
	actChan := make(chan activitiesResult, 1)
	prodChan := make(chan productsResult, 1)

	go func() {
		rows, err := activityRepo.List(ctx)
		actChan <- activitiesResult{rows, err}
	}()
	go func() {
		rows, err := productRepo.List(ctx)
		prodChan <- productsResult{rows, err}
	}()

	actRes := <-actChan
	prodRes := <-prodChan

	if actRes.err != nil {
		return nil, actRes.err
	}
	if prodRes.err != nil {
		return nil, prodRes.err
	}

	totals := calc.Aggregate(actRes.rows, prodRes.rows, start, end)
	return &entity.RevenueReport{
		Period:          period,
		StartDate:       startDateISO,
		EndDate:         endDateISO,
		TotalRevenue:    totals.TotalRevenue,
		MaterialCosts:   totals.MaterialCosts,
		GrossMargin:     totals.GrossMargin,
		GrossMarginRate: totals.GrossMarginRate,
	}, nil
}
