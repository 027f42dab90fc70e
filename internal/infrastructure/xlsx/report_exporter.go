// Package xlsx exporta la página de Reportes a un libro Excel con excelize.
package xlsx

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Costeo-api/internal/application/analytics"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Nombres de las hojas del libro.
const (
	SheetProyectos     = "Proyectos"
	SheetColaboradores = "Colaboradores"
)

var _ analytics.ReportExporter = (*ReportExporter)(nil)

// ReportExporter implementa analytics.ReportExporter.
type ReportExporter struct {
	now func() time.Time
}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{now: time.Now}
}

type estilos struct {
	titulo, encabezado, texto, monto, decimal, total int
}

// ExportReport genera el libro con una hoja de proyectos (con totales) y otra de colaboradores.
func (e *ReportExporter) ExportReport(report *dto.ReportDTO, empresa string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetProyectos); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(SheetColaboradores); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	st, err := nuevosEstilos(f)
	if err != nil {
		return nil, err
	}

	titulo := "Reporte de costeo"
	if empresa != "" {
		titulo += " — " + empresa
	}
	subtitulo := "Generado: " + e.now().Format("02/01/2006 15:04")
	if report.Estado != "" {
		subtitulo += "   |   Estado: " + report.Estado
	}

	if err := hojaProyectos(f, st, report, titulo, subtitulo); err != nil {
		return nil, err
	}
	if err := hojaColaboradores(f, st, report, titulo, subtitulo); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func hojaProyectos(f *excelize.File, st estilos, report *dto.ReportDTO, titulo, subtitulo string) error {
	headers := []string{
		"Proyecto", "Cliente", "Estado", "Meses", "Costo mensual", "Costo total",
		"Costo con riesgo", "Margen", "IVA", "Precio final (Gs.)", "Precio final (USD)",
	}
	widths := []float64{32, 28, 14, 8, 18, 18, 18, 16, 16, 20, 18}
	styles := []int{st.texto, st.texto, st.texto, st.decimal, st.monto, st.monto, st.monto, st.monto, st.monto, st.monto, st.decimal}
	if err := cabecera(f, SheetProyectos, st, titulo, subtitulo, headers, widths); err != nil {
		return err
	}

	fila := 5
	for _, p := range report.Proyectos {
		valores := []any{
			sanitizeExcelCell(p.Nombre), sanitizeExcelCell(p.Cliente), p.Estado,
			p.DuracionMeses.InexactFloat64(),
			redondo(p.CostoMensual), redondo(p.CostoTotal), redondo(p.CostoConRiesgo),
			redondo(p.Margen), redondo(p.IVA), redondo(p.PrecioFinal),
			p.PrecioFinalUSD.Round(2).InexactFloat64(),
		}
		if err := escribirFila(f, SheetProyectos, fila, valores); err != nil {
			return err
		}
		if err := estiloFila(f, SheetProyectos, fila, styles); err != nil {
			return err
		}
		fila++
	}

	// Totales
	fila++
	t := report.Totales
	totales := []any{"TOTAL", "", "", "", "", redondo(t.CostoTotal), redondo(t.CostoConRiesgo),
		redondo(t.Margen), redondo(t.IVA), redondo(t.PrecioFinal), ""}
	if err := escribirFila(f, SheetProyectos, fila, totales); err != nil {
		return err
	}
	if err := estiloRango(f, SheetProyectos, fila, 1, len(headers), st.total); err != nil {
		return err
	}

	// Avisos: proyectos fuera de los totales y asignaciones huérfanas
	avisos := []struct {
		etiqueta string
		valores  []string
	}{
		{"Proyectos sin cotizar", report.ProyectosConError},
		{"Colaboradores no resueltos", report.NoResueltos},
	}
	fila++
	for _, a := range avisos {
		if len(a.valores) == 0 {
			continue
		}
		fila++
		if err := escribirFila(f, SheetProyectos, fila, []any{a.etiqueta, sanitizeExcelCell(strings.Join(a.valores, ", "))}); err != nil {
			return err
		}
	}
	return nil
}

func hojaColaboradores(f *excelize.File, st estilos, report *dto.ReportDTO, titulo, subtitulo string) error {
	headers := []string{
		"Colaborador", "Rol", "Nivel", "Salario bruto", "Carga rígida", "Tarifa base/hora",
		"Horas asignadas", "Capacidad", "Utilización %", "Sobreasignado",
	}
	widths := []float64{30, 22, 12, 16, 16, 16, 14, 12, 14, 14}
	styles := []int{st.texto, st.texto, st.texto, st.monto, st.monto, st.monto, st.decimal, st.decimal, st.decimal, st.texto}
	if err := cabecera(f, SheetColaboradores, st, titulo, subtitulo, headers, widths); err != nil {
		return err
	}

	fila := 5
	for _, c := range report.Colaboradores {
		sobre := "No"
		if c.Sobreasignado {
			sobre = "Sí"
		}
		valores := []any{
			sanitizeExcelCell(c.Nombre), sanitizeExcelCell(c.Rol), c.Nivel,
			redondo(c.SalarioBruto), redondo(c.CargaRigida), redondo(c.TarifaBase),
			c.HorasAsignadas.InexactFloat64(), c.Capacidad.InexactFloat64(),
			c.Utilizacion.InexactFloat64(), sobre,
		}
		if err := escribirFila(f, SheetColaboradores, fila, valores); err != nil {
			return err
		}
		if err := estiloFila(f, SheetColaboradores, fila, styles); err != nil {
			return err
		}
		fila++
	}
	return nil
}

// cabecera escribe título (fila 1), subtítulo (fila 2) y encabezados (fila 4).
func cabecera(f *excelize.File, sheet string, st estilos, titulo, subtitulo string, headers []string, widths []float64) error {
	ultima, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, colName, colName, w); err != nil {
			return fmt.Errorf("set col width %s: %w", colName, err)
		}
	}
	if err := f.MergeCell(sheet, "A1", ultima+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", titulo)
	f.SetCellStyle(sheet, "A1", ultima+"1", st.titulo)
	f.SetCellValue(sheet, "A2", subtitulo)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}
	return f.SetCellStyle(sheet, "A4", ultima+"4", st.encabezado)
}

func escribirFila(f *excelize.File, sheet string, fila int, valores []any) error {
	for i, v := range valores {
		cell, err := excelize.CoordinatesToCellName(i+1, fila)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

// estiloFila aplica un estilo por columna (styles[i] para la columna i+1).
func estiloFila(f *excelize.File, sheet string, fila int, styles []int) error {
	for i, style := range styles {
		cell, err := excelize.CoordinatesToCellName(i+1, fila)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func estiloRango(f *excelize.File, sheet string, fila, desde, hasta, style int) error {
	a, _ := excelize.CoordinatesToCellName(desde, fila)
	b, _ := excelize.CoordinatesToCellName(hasta, fila)
	return f.SetCellStyle(sheet, a, b, style)
}

func nuevosEstilos(f *excelize.File) (estilos, error) {
	var st estilos
	var err error

	if st.titulo, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return st, fmt.Errorf("create title style: %w", err)
	}
	if st.encabezado, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	}); err != nil {
		return st, fmt.Errorf("create header style: %w", err)
	}
	if st.texto, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}); err != nil {
		return st, fmt.Errorf("create text style: %w", err)
	}
	formatoMonto := "#,##0"
	if st.monto, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10}, Border: thinBorders(), CustomNumFmt: &formatoMonto,
	}); err != nil {
		return st, fmt.Errorf("create amount style: %w", err)
	}
	formatoDecimal := "#,##0.00"
	if st.decimal, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10}, Border: thinBorders(), CustomNumFmt: &formatoDecimal,
	}); err != nil {
		return st, fmt.Errorf("create decimal style: %w", err)
	}
	if st.total, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11}, Border: thinBorders(), CustomNumFmt: &formatoMonto,
	}); err != nil {
		return st, fmt.Errorf("create total style: %w", err)
	}
	return st, nil
}

// redondo lleva un monto en guaraníes a unidades (la moneda no usa decimales).
func redondo(d decimal.Decimal) float64 {
	return d.Round(0).InexactFloat64()
}

// sanitizeExcelCell evita inyección de fórmulas anteponiendo una comilla simple
// a los textos que Excel interpretaría como fórmula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders bordes finos en los cuatro lados.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
