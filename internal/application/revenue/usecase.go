package revenue

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/domain/validation"
)

const (
	msgPeriod      = "period must be one of DAY, WEEK, MONTH, YEAR, CUSTOM"
	msgCustomRange = "startDate and endDate are required for CUSTOM period"
)

var errNoRenderer = errors.New("exportación PDF no configurada")

// ReportRenderer genera la versión imprimible de un reporte (PDF).
type ReportRenderer interface {
	RenderRevenue(ctx context.Context, report *entity.RevenueReport) ([]byte, error)
}

// RevenueUseCase expone el reporte de ingresos a la capa HTTP: completa el rango
// por defecto del período y delega el cálculo en ComputeRevenue.
type RevenueUseCase struct {
	activityRepo repository.ActivityRepository
	productRepo  repository.ProductRepository
	renderer     ReportRenderer
	now          func() time.Time
}

// NewRevenueUseCase construye el caso de uso. renderer puede ser nil si no se exporta PDF.
func NewRevenueUseCase(
	activityRepo repository.ActivityRepository,
	productRepo repository.ProductRepository,
	renderer ReportRenderer,
) *RevenueUseCase {
	return &RevenueUseCase{
		activityRepo: activityRepo,
		productRepo:  productRepo,
		renderer:     renderer,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj usado para las ventanas por defecto.
func (uc *RevenueUseCase) WithClock(now func() time.Time) *RevenueUseCase {
	uc.now = now
	return uc
}

// Compute calcula el reporte. Si no llegan fechas se usa la ventana del período
// que contiene el instante actual; CUSTOM exige ambas fechas.
func (uc *RevenueUseCase) Compute(ctx context.Context, period, startDate, endDate string) (*entity.RevenueReport, error) {
	if period == "" {
		period = string(entity.ReportPeriodCustom)
	}
	if !validation.IsValidReportPeriod(period) {
		return nil, domain.NewValidationError(msgPeriod)
	}
	p := entity.ReportPeriod(period)

	if startDate == "" && endDate == "" {
		start, end, err := PeriodBounds(p, uc.now())
		if err != nil {
			return nil, err
		}
		startDate, endDate = start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano)
	}
	return ComputeRevenue(ctx, uc.activityRepo, uc.productRepo, p, startDate, endDate)
}

// ExportPDF calcula el reporte y lo renderiza.
func (uc *RevenueUseCase) ExportPDF(ctx context.Context, period, startDate, endDate string) ([]byte, *entity.RevenueReport, error) {
	if uc.renderer == nil {
		return nil, nil, errNoRenderer
	}
	report, err := uc.Compute(ctx, period, startDate, endDate)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := uc.renderer.RenderRevenue(ctx, report)
	if err != nil {
		return nil, nil, err
	}
	return pdf, report, nil
}
