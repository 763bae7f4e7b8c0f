// Package pdf genera la versión imprimible del reporte de ingresos con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller   │  REPORTE DE INGRESOS + período │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RANGO: Desde / Hasta                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Importe                                    │
//	│    Ingresos / Costo de materiales / Margen bruto / Tasa       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de emisión + nota de cálculo                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/atelier-api/internal/application/revenue"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	domrevenue "github.com/jhoicas/atelier-api/internal/domain/revenue"
)

var _ revenue.ReportRenderer = (*RevenueReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 94, Green: 60, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Options datos de presentación del reporte.
type Options struct {
	BusinessName string // encabezado
	Locale       string // BCP 47, p. ej. "fr-FR"; define separadores de miles y decimales
	Currency     string // símbolo o código que acompaña a los importes
}

// RevenueReportRenderer implementa revenue.ReportRenderer usando Maroto v2.
type RevenueReportRenderer struct {
	opts    Options
	printer *message.Printer
	now     func() time.Time
}

// NewRevenueReportRenderer construye el renderer. Un locale ilegible cae en inglés.
func NewRevenueReportRenderer(opts Options) *RevenueReportRenderer {
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		tag = language.English
	}
	return &RevenueReportRenderer{
		opts:    opts,
		printer: message.NewPrinter(tag),
		now:     time.Now,
	}
}

// RenderRevenue genera el PDF y devuelve sus bytes.
func (r *RevenueReportRenderer) RenderRevenue(_ context.Context, report *entity.RevenueReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Reporte de ingresos", true).
		WithAuthor(r.opts.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(r.rangeRow(report))
	m.AddRows(line.NewRow(4))

	m.AddRows(tableHeaderRow())
	for _, rw := range r.amountRows(report) {
		m.AddRows(rw)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(line.NewRow(6))
	m.AddRows(r.footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (r *RevenueReportRenderer) headerRow(report *entity.RevenueReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.opts.BusinessName, "Atelier"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INGRESOS", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
			text.New("Período: "+string(report.Period), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func (r *RevenueReportRenderer) rangeRow(report *entity.RevenueReport) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("Desde: "+displayDate(report.StartDate), props.Text{Size: 9, Top: 3})),
		col.New(6).Add(text.New("Hasta: "+displayDate(report.EndDate), props.Text{Size: 9, Top: 3, Align: align.Right})),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 2, Right: 2,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 8, align.Left),
		h("Importe", 4, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (r *RevenueReportRenderer) amountRows(report *entity.RevenueReport) []core.Row {
	amount := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(8).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 10, Style: style, Top: 2, Left: 2})),
			col.New(4).Add(text.New(value, props.Text{Size: 10, Style: style, Align: align.Right, Top: 2, Right: 2})),
		)
	}
	return []core.Row{
		amount("Ingresos por ventas", r.formatAmount(report.TotalRevenue), false),
		amount("Costo de materiales", r.formatAmount(report.MaterialCosts), false),
		amount("Margen bruto", r.formatAmount(report.GrossMargin), true),
		amount("Tasa de margen bruto", r.formatPercent(report.GrossMarginRate), true),
	}
}

func (r *RevenueReportRenderer) footerRow() core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("Emitido el "+r.now().Format("02/01/2006 15:04"), props.Text{Size: 7, Color: colorGray}),
		text.New("Solo cuentan las ventas del rango. El costo de materiales usa el costo unitario "+
			"vigente de cada producto.", props.Text{Size: 7, Color: colorGray, Top: 5}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount redondea a 2 decimales con los separadores del locale.
func (r *RevenueReportRenderer) formatAmount(d decimal.Decimal) string {
	s := r.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
	if r.opts.Currency == "" {
		return s
	}
	return s + " " + r.opts.Currency
}

func (r *RevenueReportRenderer) formatPercent(d decimal.Decimal) string {
	return r.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2))) + " %"
}

// displayDate muestra la fecha como dd/mm/aaaa si es legible; si no, tal cual llegó.
func displayDate(s string) string {
	t, ok := domrevenue.ParseISODate(s)
	if !ok {
		return s
	}
	return t.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
