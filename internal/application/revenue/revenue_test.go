package revenue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/revenue"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

type activityRepoMock struct{ mock.Mock }

func (m *activityRepoMock) List(ctx context.Context) ([]*entity.Activity, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entity.Activity)
	return out, args.Error(1)
}

func (m *activityRepoMock) GetByID(context.Context, string) (*entity.Activity, error) { return nil, nil }

func (m *activityRepoMock) Create(context.Context, *entity.Activity) (*entity.Activity, error) {
	return nil, nil
}

func (m *activityRepoMock) Update(context.Context, string, entity.ActivityPatch) (*entity.Activity, error) {
	return nil, nil
}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entity.Product)
	return out, args.Error(1)
}

func (m *productRepoMock) GetByID(context.Context, string) (*entity.Product, error) { return nil, nil }

func (m *productRepoMock) GetByIDForUpdate(context.Context, string) (*entity.Product, error) {
	return nil, nil
}

func (m *productRepoMock) Create(context.Context, *entity.Product) (*entity.Product, error) {
	return nil, nil
}

func (m *productRepoMock) Update(context.Context, string, entity.ProductPatch) (*entity.Product, error) {
	return nil, nil
}

type rendererMock struct{ mock.Mock }

func (m *rendererMock) RenderRevenue(ctx context.Context, report *entity.RevenueReport) ([]byte, error) {
	args := m.Called(ctx, report)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func januarySales() []*entity.Activity {
	return []*entity.Activity{
		{ID: "a1", Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), Type: entity.ActivityTypeSale,
			ProductID: "p1", Quantity: -3, Amount: decimal.NewFromInt(60)},
		{ID: "a2", Date: time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC), Type: entity.ActivityTypeSale,
			ProductID: "p1", Quantity: -1, Amount: decimal.NewFromInt(25)},
	}
}

func catalog() []*entity.Product {
	return []*entity.Product{{ID: "p1", UnitCost: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(30)}}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeRevenue
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeRevenue_Enero(t *testing.T) {
	acts, prods := &activityRepoMock{}, &productRepoMock{}
	acts.On("List", mock.Anything).Return(januarySales(), nil).Once()
	prods.On("List", mock.Anything).Return(catalog(), nil).Once()

	report, err := revenue.ComputeRevenue(context.Background(), acts, prods,
		entity.ReportPeriodMonth, "2025-01-20", "2025-01-31")

	require.NoError(t, err)
	assert.Equal(t, entity.ReportPeriodMonth, report.Period)
	assert.Equal(t, "2025-01-20", report.StartDate)
	assert.Equal(t, "2025-01-31", report.EndDate)
	assert.Equal(t, "85", report.TotalRevenue.String())
	assert.Equal(t, "40", report.MaterialCosts.String())
	assert.Equal(t, "45", report.GrossMargin.String())
	assert.Equal(t, "52.94", report.GrossMarginRate.Round(2).String())
	acts.AssertExpectations(t)
	prods.AssertExpectations(t)
}

func TestComputeRevenue_SinActividades(t *testing.T) {
	acts, prods := &activityRepoMock{}, &productRepoMock{}
	acts.On("List", mock.Anything).Return([]*entity.Activity{}, nil)
	prods.On("List", mock.Anything).Return([]*entity.Product{}, nil)

	report, err := revenue.ComputeRevenue(context.Background(), acts, prods,
		entity.ReportPeriodYear, "2025-01-01T00:00:00Z", "2025-12-31T23:59:59Z")

	require.NoError(t, err)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.MaterialCosts.IsZero())
	assert.True(t, report.GrossMargin.IsZero())
	assert.True(t, report.GrossMarginRate.IsZero())
}

func TestComputeRevenue_FechasInvalidasAntesDeLeer(t *testing.T) {
	tests := []struct {
		start, end string
		message    string
	}{
		{"not-a-date", "2025-01-31", "startDate must be a valid ISO 8601 string"},
		{"", "2025-01-31", "startDate must be a valid ISO 8601 string"},
		{"2025-01-01", "31/01/2025", "endDate must be a valid ISO 8601 string"},
		{"2025-13-01", "2025-01-31", "startDate must be a valid ISO 8601 string"},
	}
	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			acts, prods := &activityRepoMock{}, &productRepoMock{}

			_, err := revenue.ComputeRevenue(context.Background(), acts, prods, entity.ReportPeriodCustom, tt.start, tt.end)

			msg, ok := domain.ValidationMessage(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, msg)
			acts.AssertNotCalled(t, "List", mock.Anything)
			prods.AssertNotCalled(t, "List", mock.Anything)
		})
	}
}

func TestComputeRevenue_PropagaErrorDeLectura(t *testing.T) {
	boom := errors.New("connection refused")
	acts, prods := &activityRepoMock{}, &productRepoMock{}
	acts.On("List", mock.Anything).Return(januarySales(), nil)
	prods.On("List", mock.Anything).Return(nil, boom)

	report, err := revenue.ComputeRevenue(context.Background(), acts, prods,
		entity.ReportPeriodCustom, "2025-01-01", "2025-01-31")

	assert.Nil(t, report)
	assert.Same(t, boom, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// PeriodBounds
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodBounds(t *testing.T) {
	ref := time.Date(2025, 1, 23, 15, 4, 5, 0, time.UTC) // jueves
	tests := []struct {
		period     entity.ReportPeriod
		start, end time.Time
	}{
		{entity.ReportPeriodDay, time.Date(2025, 1, 23, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC)},
		{entity.ReportPeriodWeek, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)},
		{entity.ReportPeriodMonth, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{entity.ReportPeriodYear, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end, err := revenue.PeriodBounds(tt.period, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end.Add(-time.Nanosecond), end)
		})
	}

	sunday := time.Date(2025, 1, 26, 8, 0, 0, 0, time.UTC)
	start, _, err := revenue.PeriodBounds(entity.ReportPeriodWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), start, "el domingo pertenece a la semana que empieza el lunes anterior")

	_, _, err = revenue.PeriodBounds(entity.ReportPeriodCustom, ref)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

// ──────────────────────────────────────────────────────────────────────────────
// RevenueUseCase
// ──────────────────────────────────────────────────────────────────────────────

func fixedClock() time.Time { return time.Date(2025, 1, 28, 9, 0, 0, 0, time.UTC) }

func TestRevenueUseCase_VentanaPorDefecto(t *testing.T) {
	acts, prods := &activityRepoMock{}, &productRepoMock{}
	acts.On("List", mock.Anything).Return(januarySales(), nil)
	prods.On("List", mock.Anything).Return(catalog(), nil)
	uc := revenue.NewRevenueUseCase(acts, prods, nil).WithClock(fixedClock)

	report, err := uc.Compute(context.Background(), "MONTH", "", "")

	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T00:00:00Z", report.StartDate)
	assert.Equal(t, "2025-01-31T23:59:59.999999999Z", report.EndDate)
	assert.Equal(t, "85", report.TotalRevenue.String())
}

func TestRevenueUseCase_PeriodoInvalido(t *testing.T) {
	uc := revenue.NewRevenueUseCase(&activityRepoMock{}, &productRepoMock{}, nil)

	_, err := uc.Compute(context.Background(), "FORTNIGHT", "2025-01-01", "2025-01-31")
	msg, _ := domain.ValidationMessage(err)
	assert.Equal(t, "period must be one of DAY, WEEK, MONTH, YEAR, CUSTOM", msg)

	_, err = uc.Compute(context.Background(), "CUSTOM", "", "")
	msg, _ = domain.ValidationMessage(err)
	assert.Equal(t, "startDate and endDate are required for CUSTOM period", msg)
}

func TestRevenueUseCase_ExportPDF(t *testing.T) {
	acts, prods, renderer := &activityRepoMock{}, &productRepoMock{}, &rendererMock{}
	acts.On("List", mock.Anything).Return(januarySales(), nil)
	prods.On("List", mock.Anything).Return(catalog(), nil)
	renderer.On("RenderRevenue", mock.Anything, mock.MatchedBy(func(r *entity.RevenueReport) bool {
		return r.TotalRevenue.Equal(decimal.NewFromInt(85))
	})).Return([]byte("%PDF-1.4"), nil).Once()
	uc := revenue.NewRevenueUseCase(acts, prods, renderer)

	pdf, report, err := uc.ExportPDF(context.Background(), "CUSTOM", "2025-01-01", "2025-01-31")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "2025-01-01", report.StartDate)
	renderer.AssertExpectations(t)
}
