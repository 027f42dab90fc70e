package costing

import (
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Snapshot foto inmutable de los datos maestros que necesita el motor.
// Los consumidores (dashboard, calculadora, PDF, reportes) cargan un Snapshot y
// se lo pasan a la Calculadora; el motor no accede a repositorios.
type Snapshot struct {
	CostosRigidos []entity.CostoRigido
	Colaboradores []entity.Colaborador
}

// Colaborador busca un colaborador por ID.
func (s Snapshot) Colaborador(id string) (entity.Colaborador, bool) {
	for _, c := range s.Colaboradores {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Colaborador{}, false
}

// ResultadoProyecto pipeline completo de un proyecto.
type ResultadoProyecto struct {
	Proyecto       entity.Proyecto
	Costo          CostoProyecto
	Cotizacion     Cotizacion
	PrecioFinalUSD decimal.Decimal // PrecioFinal / TasaCambio (cero si no hay tasa)
}

// Calculadora ejecuta el pipeline completo con parámetros globales fijos.
type Calculadora struct {
	params Parametros
}

// NewCalculadora construye la calculadora.
func NewCalculadora(params Parametros) *Calculadora {
	return &Calculadora{params: params}
}

// Parametros devuelve los parámetros globales en uso.
func (c *Calculadora) Parametros() Parametros { return c.params }

// CalcularProyecto agrega el costo del proyecto y lo cotiza.
func (c *Calculadora) CalcularProyecto(snap Snapshot, proyecto entity.Proyecto) (ResultadoProyecto, error) {
	costo, err := AgregarCostoProyecto(proyecto, snap.Colaboradores, snap.CostosRigidos)
	if err != nil {
		return ResultadoProyecto{}, err
	}
	cot := Cotizar(costo.CostoTotal, proyecto.FactorRiesgoProyecto, proyecto.MargenDeseado, c.params)
	return ResultadoProyecto{
		Proyecto:       proyecto,
		Costo:          costo,
		Cotizacion:     cot,
		PrecioFinalUSD: EnMonedaExtranjera(cot.PrecioFinal, proyecto.TasaCambio),
	}, nil
}

// UtilizacionColaborador horas comprometidas de un colaborador frente a su capacidad.
type UtilizacionColaborador struct {
	ColaboradorID  string
	Nombre         string
	HorasAsignadas decimal.Decimal // suma en proyectos en curso
	Capacidad      decimal.Decimal // HorasMensuales * Disponibilidad / 100
	Porcentaje     decimal.Decimal // HorasAsignadas / Capacidad * 100 (cero si no hay capacidad)
	Proyectos      int
	Sobreasignado  bool
}

// Utilizacion suma las horas asignadas al colaborador en los proyectos en curso
// (no completados ni cancelados). El motor no rechaza sobreasignaciones; este
// cálculo solo las señala para que la UI advierta.
func Utilizacion(colaborador entity.Colaborador, proyectos []entity.Proyecto) UtilizacionColaborador {
	u := UtilizacionColaborador{
		ColaboradorID:  colaborador.ID,
		Nombre:         colaborador.Nombre,
		HorasAsignadas: decimal.Zero,
		Capacidad:      colaborador.HorasMensuales.Mul(colaborador.Disponibilidad).Div(cien),
		Porcentaje:     decimal.Zero,
	}
	for _, p := range proyectos {
		if !p.EnCurso() {
			continue
		}
		asignado := false
		for _, a := range p.Colaboradores {
			if a.ColaboradorID == colaborador.ID {
				u.HorasAsignadas = u.HorasAsignadas.Add(a.HorasAsignadas)
				asignado = true
			}
		}
		if asignado {
			u.Proyectos++
		}
	}
	if u.Capacidad.IsPositive() {
		u.Porcentaje = u.HorasAsignadas.Div(u.Capacidad).Mul(cien)
	}
	u.Sobreasignado = u.HorasAsignadas.GreaterThan(u.Capacidad)
	return u
}
