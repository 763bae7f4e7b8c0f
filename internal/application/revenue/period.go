package revenue

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// PeriodBounds devuelve la ventana por defecto de un período que contiene ref:
// el día, la semana (lunes a domingo), el mes o el año. El fin es el último
// nanosegundo de la ventana. CUSTOM no tiene ventana por defecto.
func PeriodBounds(period entity.ReportPeriod, ref time.Time) (start, end time.Time, err error) {
	y, m, d := ref.Date()
	loc := ref.Location()
	switch period {
	case entity.ReportPeriodDay:
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	case entity.ReportPeriodWeek:
		offset := (int(ref.Weekday()) + 6) % 7 // lunes = 0
		start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 7)
	case entity.ReportPeriodMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	case entity.ReportPeriodYear:
		start = time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	case entity.ReportPeriodCustom:
		return time.Time{}, time.Time{}, domain.NewValidationError(msgCustomRange)
	default:
		return time.Time{}, time.Time{}, domain.NewValidationError(msgPeriod)
	}
	return start, end.Add(-time.Nanosecond), nil
}
