package quote_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/quote"
	"github.com/jhoicas/Costeo-api/internal/application/snapshot"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func eq(t *testing.T, want string, got decimal.Decimal, campo string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: esperado %s, obtenido %s", campo, want, got.String())
}

type fixture struct {
	uc        *quote.QuoteUseCase
	proyectos *memory.ProyectoRepo
	logs      *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	costos := memory.NewCostoRigidoRepository()
	colaboradores := memory.NewColaboradorRepository()
	proyectos := memory.NewProyectoRepository()

	require.NoError(t, costos.Create(ctx, &entity.CostoRigido{ID: "ips", Nombre: "IPS", Tipo: entity.TipoCostoPorcentaje, Valor: d("9"), Categoria: entity.CategoriaLegal}))
	require.NoError(t, costos.Create(ctx, &entity.CostoRigido{ID: "almuerzo", Nombre: "Almuerzo", Tipo: entity.TipoCostoFijo, Valor: d("300000"), Categoria: entity.CategoriaBeneficio}))
	require.NoError(t, colaboradores.Create(ctx, &entity.Colaborador{
		ID: "ana", Nombre: "Ana", SalarioBruto: d("5000000"), HorasMensuales: d("160"),
		CostosRigidos: []string{"ips", "almuerzo"}, Disponibilidad: d("100"), Activo: true,
	}))
	require.NoError(t, colaboradores.Create(ctx, &entity.Colaborador{
		ID: "beto", Nombre: "Beto", SalarioBruto: d("3000000"), HorasMensuales: decimal.Zero, Activo: true,
	}))

	logs := &bytes.Buffer{}
	loader := snapshot.NewLoader(costos, colaboradores, proyectos)
	calc := costing.NewCalculadora(costing.ParametrosPorDefecto())
	return fixture{
		uc:        quote.NewQuoteUseCase(proyectos, loader, calc, logger.NewWithWriter(logs, "warn")),
		proyectos: proyectos,
		logs:      logs,
	}
}

func portal() dto.ProyectoRequest {
	return dto.ProyectoRequest{
		Nombre:        "Portal de clientes",
		Cliente:       "Banco Central",
		DuracionMeses: d("3"),
		TasaCambio:    d("7500"),
		MargenDeseado: d("25"),
		Estado:        entity.EstadoActivo,
		Colaboradores: []dto.AsignacionDTO{
			{ColaboradorID: "ana", Recargo: d("15"), HorasAsignadas: d("120")},
		},
		GastosAdicionales: dto.GastosAdicionalesDTO{
			Infraestructura: d("500000"), Licencias: d("300000"), Capacitacion: d("200000"), Otros: d("100000"),
		},
	}
}

func (f fixture) guardar(t *testing.T, id string, in dto.ProyectoRequest) {
	t.Helper()
	p, err := usecase.BuildProyecto(in)
	require.NoError(t, err)
	p.ID = id
	require.NoError(t, f.proyectos.Create(context.Background(), &p))
}

func TestCalculate_EscenarioDeReferencia(t *testing.T) {
	f := newFixture(t)
	f.guardar(t, "p1", portal())

	out, err := f.uc.Calculate(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", out.ProyectoID)
	assert.Equal(t, "Banco Central", out.Cliente)
	require.Len(t, out.Costo.Lineas, 1)
	l := out.Costo.Lineas[0]
	assert.True(t, l.Resuelto)
	eq(t, "750000", l.CargaRigida, "carga rígida")
	eq(t, "35937.5", l.TarifaBase, "tarifa base")
	eq(t, "41328.125", l.TarifaEfectiva, "tarifa con recargo")
	eq(t, "4959375", l.CostoMensual, "costo mensual de la línea")

	eq(t, "1100000", out.Costo.GastosAdicionales, "gastos")
	eq(t, "6059375", out.Costo.CostoMensual, "costo mensual")
	eq(t, "18178125", out.Costo.CostoTotal, "costo total")
	assert.Empty(t, out.Costo.NoResueltos)

	eq(t, "1.1", out.Precio.FactorRiesgo, "factor por defecto")
	eq(t, "19995937.5", out.Precio.CostoConRiesgo, "costo con riesgo")
	eq(t, "4998984.375", out.Precio.Margen, "margen")
	eq(t, "24994921.875", out.Precio.PrecioVenta, "precio de venta")
	eq(t, "2499492.1875", out.Precio.IVA, "iva")
	eq(t, "27494414.0625", out.Precio.PrecioFinal, "precio final")
	eq(t, "3665.921875", out.Precio.PrecioFinalUSD, "precio en dólares")
}

func TestCalculate_FactorDelProyecto(t *testing.T) {
	f := newFixture(t)
	in := portal()
	factor := d("1.2")
	in.FactorRiesgoProyecto = &factor
	f.guardar(t, "p1", in)

	out, err := f.uc.Calculate(context.Background(), "p1")
	require.NoError(t, err)
	eq(t, "21813750", out.Precio.CostoConRiesgo, "18178125 * 1.2")
}

func TestCalculate_NoEncontrado(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Calculate(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculate_ColaboradorSinHoras(t *testing.T) {
	f := newFixture(t)
	in := portal()
	in.Colaboradores = append(in.Colaboradores, dto.AsignacionDTO{ColaboradorID: "beto", HorasAsignadas: d("10")})
	f.guardar(t, "p1", in)

	_, err := f.uc.Calculate(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrHorasMensualesInvalidas)
}

func TestCalculate_TarifaPropiaEvitaHorasCero(t *testing.T) {
	f := newFixture(t)
	custom := d("20000")
	in := portal()
	in.Colaboradores = []dto.AsignacionDTO{{ColaboradorID: "beto", HorasAsignadas: d("10"), Recargo: d("50"), CostoPorHoraCustom: &custom}}
	f.guardar(t, "p1", in)

	out, err := f.uc.Calculate(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, out.Costo.Lineas[0].TarifaCustom)
	eq(t, "200000", out.Costo.Lineas[0].CostoMensual, "el recargo no aplica")
}

func TestSimulate_NoPersisteYAvisaNoResueltos(t *testing.T) {
	f := newFixture(t)
	in := portal()
	in.Colaboradores = append(in.Colaboradores, dto.AsignacionDTO{ColaboradorID: "fantasma", HorasAsignadas: d("100")})

	out, err := f.uc.Simulate(context.Background(), dto.SimulateQuoteRequest{Proyecto: in})
	require.NoError(t, err)

	assert.Empty(t, out.ProyectoID)
	eq(t, "18178125", out.Costo.CostoTotal, "el colaborador inexistente aporta cero")
	assert.Equal(t, []string{"fantasma"}, out.Costo.NoResueltos)
	assert.False(t, out.Costo.Lineas[1].Resuelto)
	assert.Contains(t, f.logs.String(), "fantasma")

	list, err := f.proyectos.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSimulate_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	in := portal()
	in.DuracionMeses = decimal.Zero
	_, err := f.uc.Simulate(context.Background(), dto.SimulateQuoteRequest{Proyecto: in})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
