package costing_test

import (
	"testing"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: colaborador de 5.000.000 Gs. con IPS (9%) y almuerzo (300.000 Gs.)
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

func costosFixture() []entity.CostoRigido {
	return []entity.CostoRigido{
		{ID: "ips", Nombre: "IPS", Tipo: entity.TipoCostoPorcentaje, Valor: d("9"), Categoria: entity.CategoriaLegal},
		{ID: "almuerzo", Nombre: "Almuerzo", Tipo: entity.TipoCostoFijo, Valor: d("300000"), Categoria: entity.CategoriaBeneficio},
		{ID: "seguro", Nombre: "Seguro médico", Tipo: entity.TipoCostoFijo, Valor: d("450000"), Categoria: entity.CategoriaBeneficio},
	}
}

func colaboradorFixture() entity.Colaborador {
	return entity.Colaborador{
		ID:             "col-1",
		Nombre:         "Ana Benítez",
		SalarioBruto:   d("5000000"),
		HorasMensuales: d("160"),
		CostosRigidos:  []string{"ips", "almuerzo"},
		Disponibilidad: d("100"),
		Activo:         true,
	}
}

func proyectoFixture() entity.Proyecto {
	return entity.Proyecto{
		ID:            "proy-1",
		Nombre:        "Portal de clientes",
		DuracionMeses: d("3"),
		TasaCambio:    d("7500"),
		MargenDeseado: d("25"),
		Estado:        entity.EstadoActivo,
		Colaboradores: []entity.ProyectoColaborador{
			{ColaboradorID: "col-1", Recargo: d("15"), HorasAsignadas: d("120"), RolEnProyecto: "Backend"},
		},
		GastosAdicionales: entity.GastosAdicionales{
			Infraestructura: d("500000"),
			Licencias:       d("300000"),
			Capacitacion:    d("200000"),
			Otros:           d("100000"),
		},
	}
}

func snapshotFixture() costing.Snapshot {
	return costing.Snapshot{
		CostosRigidos: costosFixture(),
		Colaboradores: []entity.Colaborador{colaboradorFixture()},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga rígida
// ──────────────────────────────────────────────────────────────────────────────

func TestCargaRigida_EscenarioIPSyAlmuerzo(t *testing.T) {
	carga := costing.CargaRigida(colaboradorFixture(), costosFixture())
	assertDecimal(t, "750000", carga, "450.000 de IPS + 300.000 de almuerzo")
}

func TestCargaRigida_EsAditivaEnConjuntosDisjuntos(t *testing.T) {
	col := colaboradorFixture()

	colA := col
	colA.CostosRigidos = []string{"ips"}
	colB := col
	colB.CostosRigidos = []string{"almuerzo", "seguro"}
	colAB := col
	colAB.CostosRigidos = []string{"ips", "almuerzo", "seguro"}

	a := costing.CargaRigida(colA, costosFixture())
	b := costing.CargaRigida(colB, costosFixture())
	ab := costing.CargaRigida(colAB, costosFixture())

	assert.True(t, a.Add(b).Equal(ab), "carga(A ∪ B) debe ser carga(A) + carga(B)")
}

func TestCargaRigida_IgnoraIDsInexistentes(t *testing.T) {
	col := colaboradorFixture()
	col.CostosRigidos = []string{"ips", "no-existe"}
	assertDecimal(t, "450000", costing.CargaRigida(col, costosFixture()), "solo IPS")
}

func TestCargaRigida_IDRepetidoSeSumaDosVeces(t *testing.T) {
	col := colaboradorFixture()
	col.CostosRigidos = []string{"almuerzo", "almuerzo"}
	assertDecimal(t, "600000", costing.CargaRigida(col, costosFixture()), "almuerzo duplicado")
}

func TestCargaRigida_SinCostos(t *testing.T) {
	col := colaboradorFixture()
	col.CostosRigidos = nil
	assert.True(t, costing.CargaRigida(col, costosFixture()).IsZero())
}

func TestDetalleCargaRigida_RespetaOrdenDelColaborador(t *testing.T) {
	items := costing.DetalleCargaRigida(colaboradorFixture(), costosFixture())
	require.Len(t, items, 2)
	assert.Equal(t, "ips", items[0].CostoRigidoID)
	assertDecimal(t, "450000", items[0].Monto, "IPS")
	assert.Equal(t, "almuerzo", items[1].CostoRigidoID)
	assertDecimal(t, "300000", items[1].Monto, "almuerzo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo por hora
// ──────────────────────────────────────────────────────────────────────────────

func TestCostoLinea_EscenarioConRecargo(t *testing.T) {
	col := colaboradorFixture()
	asig := entity.ProyectoColaborador{ColaboradorID: col.ID, Recargo: d("15"), HorasAsignadas: d("120")}

	linea, err := costing.CostoLinea(col, d("750000"), asig)
	require.NoError(t, err)

	assertDecimal(t, "5750000", linea.CostoMensualBase, "salario + carga")
	assertDecimal(t, "35937.5", linea.TarifaBase, "tarifa base")
	assertDecimal(t, "41328.125", linea.TarifaEfectiva, "tarifa con 15% de recargo")
	assertDecimal(t, "4959375", linea.CostoMensual, "costo mensual de la línea")
	assert.False(t, linea.TarifaCustom)
}

func TestCostoLinea_TarifaCustomIgnoraRecargo(t *testing.T) {
	col := colaboradorFixture()
	for _, recargo := range []string{"0", "15", "80"} {
		asig := entity.ProyectoColaborador{
			ColaboradorID:      col.ID,
			Recargo:            d(recargo),
			HorasAsignadas:     d("120"),
			CostoPorHoraCustom: dp("50000"),
		}
		linea, err := costing.CostoLinea(col, d("750000"), asig)
		require.NoError(t, err)
		assertDecimal(t, "6000000", linea.CostoMensual, "custom * horas con recargo "+recargo)
		assert.True(t, linea.TarifaCustom)
		assert.True(t, linea.Recargo.IsZero(), "el recargo no se aplica con tarifa custom")
	}
}

func TestCostoLinea_TarifaCustomCeroEsValida(t *testing.T) {
	asig := entity.ProyectoColaborador{ColaboradorID: "col-1", Recargo: d("15"), HorasAsignadas: d("40"), CostoPorHoraCustom: dp("0")}
	linea, err := costing.CostoLinea(colaboradorFixture(), d("750000"), asig)
	require.NoError(t, err)
	assert.True(t, linea.CostoMensual.IsZero())
}

func TestCostoLinea_HorasMensualesCero_Error(t *testing.T) {
	col := colaboradorFixture()
	col.HorasMensuales = decimal.Zero
	asig := entity.ProyectoColaborador{ColaboradorID: col.ID, HorasAsignadas: d("10")}

	_, err := costing.CostoLinea(col, decimal.Zero, asig)
	assert.ErrorIs(t, err, domain.ErrHorasMensualesInvalidas)
}

func TestCostoLinea_HorasMensualesCeroConTarifaCustom_NoFalla(t *testing.T) {
	col := colaboradorFixture()
	col.HorasMensuales = decimal.Zero
	asig := entity.ProyectoColaborador{ColaboradorID: col.ID, HorasAsignadas: d("10"), CostoPorHoraCustom: dp("40000")}

	linea, err := costing.CostoLinea(col, decimal.Zero, asig)
	require.NoError(t, err)
	assertDecimal(t, "400000", linea.CostoMensual, "custom * horas")
	assert.True(t, linea.TarifaBase.IsZero())
}

func TestCostoLinea_SobreasignacionNoSeRechaza(t *testing.T) {
	col := colaboradorFixture()
	asig := entity.ProyectoColaborador{ColaboradorID: col.ID, HorasAsignadas: d("320")}
	linea, err := costing.CostoLinea(col, d("750000"), asig)
	require.NoError(t, err)
	assertDecimal(t, "11500000", linea.CostoMensual, "35.937,5 * 320")
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregarCostoProyecto_Escenario(t *testing.T) {
	costo, err := costing.AgregarCostoProyecto(proyectoFixture(), []entity.Colaborador{colaboradorFixture()}, costosFixture())
	require.NoError(t, err)

	assertDecimal(t, "4959375", costo.CostoColaboradores, "equipo mensual")
	assertDecimal(t, "1100000", costo.GastosAdicionales, "gastos mensuales")
	assertDecimal(t, "6059375", costo.CostoMensual, "total mensual")
	assertDecimal(t, "18178125", costo.CostoTotal, "total en 3 meses")
	assert.Len(t, costo.Lineas, 1)
	assert.Empty(t, costo.NoResueltos)
}

func TestAgregarCostoProyecto_EscalaLinealConDuracion(t *testing.T) {
	p := proyectoFixture()
	base, err := costing.AgregarCostoProyecto(p, []entity.Colaborador{colaboradorFixture()}, costosFixture())
	require.NoError(t, err)

	p.DuracionMeses = p.DuracionMeses.Mul(decimal.NewFromInt(2))
	doble, err := costing.AgregarCostoProyecto(p, []entity.Colaborador{colaboradorFixture()}, costosFixture())
	require.NoError(t, err)

	assert.True(t, base.CostoTotal.Mul(decimal.NewFromInt(2)).Equal(doble.CostoTotal),
		"duplicar la duración duplica exactamente el costo total")
}

func TestAgregarCostoProyecto_ColaboradorInexistenteAportaCero(t *testing.T) {
	p := proyectoFixture()
	p.Colaboradores = append(p.Colaboradores, entity.ProyectoColaborador{
		ColaboradorID: "fantasma", Recargo: d("10"), HorasAsignadas: d("100"),
	})

	costo, err := costing.AgregarCostoProyecto(p, []entity.Colaborador{colaboradorFixture()}, costosFixture())
	require.NoError(t, err)

	assertDecimal(t, "18178125", costo.CostoTotal, "el colaborador inexistente no suma")
	assert.Equal(t, []string{"fantasma"}, costo.NoResueltos)
	require.Len(t, costo.Lineas, 2)
	assert.False(t, costo.Lineas[1].Resuelto)
}

func TestAgregarCostoProyecto_PropagaErrorDeHoras(t *testing.T) {
	col := colaboradorFixture()
	col.HorasMensuales = decimal.Zero
	_, err := costing.AgregarCostoProyecto(proyectoFixture(), []entity.Colaborador{col}, costosFixture())
	assert.ErrorIs(t, err, domain.ErrHorasMensualesInvalidas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cotización
// ──────────────────────────────────────────────────────────────────────────────

func TestCotizar_Escenario(t *testing.T) {
	cot := costing.Cotizar(d("18178125"), dp("1.1"), d("25"), costing.ParametrosPorDefecto())

	assertDecimal(t, "19995937.5", cot.CostoConRiesgo, "costo con riesgo")
	assertDecimal(t, "4998984.375", cot.Margen, "margen")
	assertDecimal(t, "24994921.875", cot.PrecioVenta, "precio de venta")
	assertDecimal(t, "2499492.1875", cot.IVA, "IVA")
	assertDecimal(t, "27494414.0625", cot.PrecioFinal, "precio final")
	assert.True(t, cot.PrecioVenta.Mul(d("1.10")).Equal(cot.PrecioFinal), "PrecioFinal = PrecioVenta * 1,10")
}

func TestCotizar_FactorRiesgoAusenteUsaDefecto(t *testing.T) {
	sinFactor := costing.Cotizar(d("18178125"), nil, d("25"), costing.ParametrosPorDefecto())
	conFactor := costing.Cotizar(d("18178125"), dp("1.1"), d("25"), costing.ParametrosPorDefecto())

	assert.True(t, sinFactor.PrecioFinal.Equal(conFactor.PrecioFinal))
	assertDecimal(t, "1.1", sinFactor.FactorRiesgo, "factor aplicado")
}

func TestCotizar_MonotonoEnMargen(t *testing.T) {
	p := costing.ParametrosPorDefecto()
	prev := costing.Cotizar(d("1000000"), nil, d("0"), p).PrecioFinal
	for _, margen := range []string{"5", "10", "25", "60"} {
		actual := costing.Cotizar(d("1000000"), nil, d(margen), p).PrecioFinal
		assert.Truef(t, actual.GreaterThan(prev), "margen %s debe subir el precio final", margen)
		prev = actual
	}
}

func TestCotizar_MonotonoEnFactorRiesgo(t *testing.T) {
	p := costing.ParametrosPorDefecto()
	prev := costing.Cotizar(d("1000000"), dp("1"), d("20"), p).PrecioFinal
	for _, factor := range []string{"1.05", "1.1", "1.3", "2"} {
		actual := costing.Cotizar(d("1000000"), dp(factor), d("20"), p).PrecioFinal
		assert.Truef(t, actual.GreaterThan(prev), "factor %s debe subir el precio final", factor)
		prev = actual
	}
}

func TestCotizar_PrecioFinalNoMenorAlCostoConRiesgo(t *testing.T) {
	cot := costing.Cotizar(d("123456.78"), dp("1.25"), d("0"), costing.ParametrosPorDefecto())
	assert.True(t, cot.PrecioFinal.GreaterThanOrEqual(cot.CostoConRiesgo))
}

func TestCotizar_TasaIVAConfigurable(t *testing.T) {
	p := costing.Parametros{FactorRiesgoPorDefecto: d("1"), TasaIVA: d("0.05")}
	cot := costing.Cotizar(d("1000"), nil, d("0"), p)
	assertDecimal(t, "50", cot.IVA, "IVA al 5%")
	assertDecimal(t, "1050", cot.PrecioFinal, "precio final")
}

func TestEnMonedaExtranjera(t *testing.T) {
	assertDecimal(t, "2", costing.EnMonedaExtranjera(d("15000"), d("7500")), "conversión")
	assert.True(t, costing.EnMonedaExtranjera(d("15000"), decimal.Zero).IsZero(), "sin tasa devuelve cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline completo
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularProyecto_PipelineCompleto(t *testing.T) {
	calc := costing.NewCalculadora(costing.ParametrosPorDefecto())
	res, err := calc.CalcularProyecto(snapshotFixture(), proyectoFixture())
	require.NoError(t, err)

	assertDecimal(t, "18178125", res.Costo.CostoTotal, "costo total")
	assertDecimal(t, "27494414.0625", res.Cotizacion.PrecioFinal, "precio final")
	assert.True(t, res.PrecioFinalUSD.Equal(res.Cotizacion.PrecioFinal.Div(d("7500"))))
}

func TestCalcularProyecto_EsIdempotente(t *testing.T) {
	calc := costing.NewCalculadora(costing.ParametrosPorDefecto())
	snap := snapshotFixture()
	p := proyectoFixture()

	r1, err1 := calc.CalcularProyecto(snap, p)
	r2, err2 := calc.CalcularProyecto(snap, p)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, r1.Cotizacion.PrecioFinal.String(), r2.Cotizacion.PrecioFinal.String())
	assert.Equal(t, r1.Costo.CostoTotal.String(), r2.Costo.CostoTotal.String())
	assert.Equal(t, r1.PrecioFinalUSD.String(), r2.PrecioFinalUSD.String())
}

func TestCalcularProyecto_NoMutaEntradas(t *testing.T) {
	calc := costing.NewCalculadora(costing.ParametrosPorDefecto())
	snap := snapshotFixture()
	p := proyectoFixture()

	_, err := calc.CalcularProyecto(snap, p)
	require.NoError(t, err)

	assert.Nil(t, p.FactorRiesgoProyecto, "el factor por defecto no se escribe en el proyecto")
	assert.Equal(t, []string{"ips", "almuerzo"}, snap.Colaboradores[0].CostosRigidos)
}

func TestCalcularProyecto_ProyectoVacioCuestaCero(t *testing.T) {
	calc := costing.NewCalculadora(costing.ParametrosPorDefecto())
	p := entity.Proyecto{ID: "vacio", DuracionMeses: d("6"), MargenDeseado: d("40"), FactorRiesgoProyecto: dp("1.5")}

	res, err := calc.CalcularProyecto(snapshotFixture(), p)
	require.NoError(t, err)
	assert.True(t, res.Costo.CostoTotal.IsZero())
	assert.True(t, res.Cotizacion.PrecioFinal.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Utilización
// ──────────────────────────────────────────────────────────────────────────────

func TestUtilizacion_CuentaSoloProyectosEnCurso(t *testing.T) {
	col := colaboradorFixture()
	col.Disponibilidad = d("50") // capacidad 80 h

	activo := proyectoFixture()
	cerrado := proyectoFixture()
	cerrado.ID = "proy-2"
	cerrado.Estado = entity.EstadoCompletado

	u := costing.Utilizacion(col, []entity.Proyecto{activo, cerrado})

	assertDecimal(t, "80", u.Capacidad, "160 * 50%")
	assertDecimal(t, "120", u.HorasAsignadas, "solo el proyecto activo")
	assertDecimal(t, "150", u.Porcentaje, "120 / 80")
	assert.Equal(t, 1, u.Proyectos)
	assert.True(t, u.Sobreasignado)
}

func TestUtilizacion_SinCapacidad(t *testing.T) {
	col := colaboradorFixture()
	col.Disponibilidad = decimal.Zero

	u := costing.Utilizacion(col, nil)
	assert.True(t, u.Porcentaje.IsZero())
	assert.False(t, u.Sobreasignado)
}
