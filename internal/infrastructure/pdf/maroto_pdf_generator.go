// Package pdf implementa el informe de cotización de un proyecto con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa             │  COTIZACIÓN + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROYECTO: Nombre / Cliente / Duración / Estado              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EQUIPO: Colaborador | Rol | Horas | Tarifa | Costo mensual  │
//	│  GASTOS ADICIONALES (mensuales)                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN DE COSTOS │ PRECIO: riesgo, margen, IVA, final, USD │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de referencia + leyenda de validez               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Costeo-api/internal/application/report"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/pkg/format"
	"github.com/shopspring/decimal"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorWarn    = &props.Color{Red: 180, Green: 60, Blue: 20}
)

var _ report.ProjectPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.ProjectPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, q report.QuoteForPDF) ([]byte, error) {
	res := q.Resultado
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+res.Proyecto.Nombre, true).
		WithAuthor(q.Empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proyectoRow(res.Proyecto))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Equipo
	m.AddRows(sectionTitle("EQUIPO ASIGNADO"))
	m.AddRows(tableHeaderRow())
	m.AddRows(equipoRows(res.Costo.Lineas)...)
	if len(res.Costo.NoResueltos) > 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Atención: %d colaborador(es) asignado(s) no existen y se cotizan en cero.",
				len(res.Costo.NoResueltos)), props.Text{Size: 7, Color: colorWarn, Top: 1}),
		)))
	}

	// Gastos adicionales
	m.AddRows(row.New(3))
	m.AddRows(sectionTitle("GASTOS ADICIONALES (MENSUALES)"))
	m.AddRows(gastosRows(res.Proyecto.GastosAdicionales)...)

	// Resumen y precio
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(res))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(q))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha (der).
func headerRow(q report.QuoteForPDF) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(q.Empresa, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Propuesta económica de servicios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+q.Fecha.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// proyectoRow: datos del proyecto y del cliente.
func proyectoRow(p entity.Proyecto) core.Row {
	inicio := "—"
	if p.FechaInicio != nil {
		inicio = p.FechaInicio.Format("02/01/2006")
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Cliente: %s   |   Duración: %s meses   |   Inicio: %s   |   Estado: %s",
				nonEmpty(p.Cliente, "—"),
				format.ConDecimales(p.DuracionMeses, 0),
				inicio,
				p.Estado,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

// tableHeaderRow: cabecera de la tabla del equipo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Colaborador", 3, align.Left),
		h("Rol", 3, align.Left),
		h("Horas/mes", 2, align.Center),
		h("Tarifa/hora", 2, align.Right),
		h("Costo mensual", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// equipoRows: una fila por asignación.
func equipoRows(lineas []costing.LineaCosto) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		nombre := l.Nombre
		if !l.Resuelto {
			nombre = "(no encontrado) " + l.ColaboradorID
		}
		tarifa := format.Entero(l.TarifaEfectiva)
		if l.TarifaCustom {
			tarifa += " *"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(l.RolEnProyecto, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(format.ConDecimales(l.HorasAsignadas, 0), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(tarifa, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(format.Entero(l.CostoMensual), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// gastosRows: los cuatro rubros mensuales.
func gastosRows(g entity.GastosAdicionales) []core.Row {
	item := func(label string, v string) core.Row {
		return row.New(5).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 8, Left: 1})),
			col.New(6).Add(text.New(v, props.Text{Size: 8, Align: align.Right, Right: 1})),
		)
	}
	return []core.Row{
		item("Infraestructura", format.Guaranies(g.Infraestructura)),
		item("Licencias", format.Guaranies(g.Licencias)),
		item("Capacitación", format.Guaranies(g.Capacitacion)),
		item("Otros", format.Guaranies(g.Otros)),
	}
}

// totalsRow: resumen de costos (izq) y bloque de precio (der).
func totalsRow(res costing.ResultadoProyecto) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	c := res.Costo
	cot := res.Cotizacion
	usd := "—"
	if res.Proyecto.TasaCambio.IsPositive() {
		usd = format.Dolares(res.PrecioFinalUSD)
	}

	return row.New(44).Add(
		col.New(3).Add(
			label("Equipo (mensual):", 0),
			label("Gastos (mensual):", 6),
			label("Costo mensual:", 12),
			label("Duración (meses):", 18),
			label("Costo total:", 24),
		),
		col.New(3).Add(
			value(format.Guaranies(c.CostoColaboradores), 0),
			value(format.Guaranies(c.GastosAdicionales), 6),
			value(format.Guaranies(c.CostoMensual), 12),
			value(format.ConDecimales(c.DuracionMeses, 0), 18),
			value(format.Guaranies(c.CostoTotal), 24),
		),
		col.New(3).Add(
			label("Con riesgo (x"+cot.FactorRiesgo.String()+"):", 0),
			label("Margen ("+format.Porcentaje(cot.MargenDeseado)+"):", 6),
			label("Precio de venta:", 12),
			label("IVA ("+format.Porcentaje(cot.TasaIVA.Mul(cien))+"):", 18),
			label("PRECIO FINAL:", 26),
			label("Equivalente USD:", 34),
		),
		col.New(3).Add(
			value(format.Guaranies(cot.CostoConRiesgo), 0),
			value(format.Guaranies(cot.Margen), 6),
			value(format.Guaranies(cot.PrecioVenta), 12),
			value(format.Guaranies(cot.IVA), 18),
			grand(format.Guaranies(cot.PrecioFinal), 26),
			value(usd, 34),
		),
	)
}

// footerRow: QR con la referencia de la cotización + leyenda.
func footerRow(q report.QuoteForPDF) core.Row {
	res := q.Resultado
	ref := fmt.Sprintf("COTIZACION|%s|%s|%s",
		nonEmpty(res.Proyecto.ID, "simulacion"),
		res.Cotizacion.PrecioFinal.StringFixed(0),
		q.Fecha.Format("2006-01-02"),
	)
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Montos expresados en guaraníes (PYG). El equivalente en dólares es referencial "+
				"y se calcula con la tasa de cambio del proyecto.", props.Text{
				Size: 7, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Tarifas marcadas con * son acordadas por asignación.", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
			text.New("Propuesta válida por 30 días desde la fecha de emisión.", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 22, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

var cien = decimal.NewFromInt(100)

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
