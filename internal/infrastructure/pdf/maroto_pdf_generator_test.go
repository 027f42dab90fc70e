package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Costeo-api/internal/application/report"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func resultado(t *testing.T) costing.ResultadoProyecto {
	t.Helper()
	snap := costing.Snapshot{
		CostosRigidos: []entity.CostoRigido{
			{ID: "ips", Nombre: "IPS", Tipo: entity.TipoCostoPorcentaje, Valor: d("9"), Categoria: entity.CategoriaLegal},
		},
		Colaboradores: []entity.Colaborador{
			{ID: "ana", Nombre: "Ana Benítez", SalarioBruto: d("5000000"), HorasMensuales: d("160"), CostosRigidos: []string{"ips"}},
		},
	}
	p := entity.Proyecto{
		ID:            "p-1",
		Nombre:        "Migración ERP",
		Cliente:       "Cooperativa Ñandutí",
		DuracionMeses: d("3"),
		TasaCambio:    d("7500"),
		MargenDeseado: d("25"),
		Estado:        entity.EstadoActivo,
		Colaboradores: []entity.ProyectoColaborador{
			{ColaboradorID: "ana", Recargo: d("15"), HorasAsignadas: d("120"), RolEnProyecto: "Backend"},
			{ColaboradorID: "fantasma", HorasAsignadas: d("40")},
		},
		GastosAdicionales: entity.GastosAdicionales{Infraestructura: d("500000"), Licencias: d("300000")},
	}
	res, err := costing.NewCalculadora(costing.ParametrosPorDefecto()).CalcularProyecto(snap, p)
	require.NoError(t, err)
	return res
}

func TestGenerateQuotePDF_DevuelvePDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	out, err := g.GenerateQuotePDF(context.Background(), report.QuoteForPDF{
		Empresa:   "Consultora del Este",
		Fecha:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Resultado: resultado(t),
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe comenzar con la firma PDF")
	assert.Greater(t, len(out), 1000)
}

func TestGenerateQuotePDF_SinTasaDeCambio(t *testing.T) {
	res := resultado(t)
	res.Proyecto.TasaCambio = decimal.Zero
	res.PrecioFinalUSD = decimal.Zero

	out, err := pdf.NewMarotoPDFGenerator().GenerateQuotePDF(context.Background(), report.QuoteForPDF{
		Fecha:     time.Now(),
		Resultado: res,
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
