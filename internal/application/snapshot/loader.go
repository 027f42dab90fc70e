// Package snapshot carga desde los repositorios la foto de datos maestros que
// consume el motor de costeo. Todos los consumidores (calculadora, dashboard,
// PDF y reportes) pasan por aquí para ver exactamente los mismos datos.
package snapshot

import (
	"context"
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// Cartera snapshot más los proyectos que se van a calcular.
type Cartera struct {
	Snapshot  costing.Snapshot
	Proyectos []entity.Proyecto
}

// Loader lee costos rígidos, colaboradores y proyectos en paralelo.
type Loader struct {
	costos        repository.CostoRigidoRepository
	colaboradores repository.ColaboradorRepository
	proyectos     repository.ProyectoRepository
}

// NewLoader construye el cargador.
func NewLoader(
	costos repository.CostoRigidoRepository,
	colaboradores repository.ColaboradorRepository,
	proyectos repository.ProyectoRepository,
) *Loader {
	return &Loader{costos: costos, colaboradores: colaboradores, proyectos: proyectos}
}

type costosResult struct {
	items []*entity.CostoRigido
	err   error
}

type colaboradoresResult struct {
	items []*entity.Colaborador
	err   error
}

type proyectosResult struct {
	items []*entity.Proyecto
	err   error
}

// Load devuelve el snapshot de costos rígidos y colaboradores (dos consultas en paralelo).
func (l *Loader) Load(ctx context.Context) (costing.Snapshot, error) {
	costosCh := make(chan costosResult, 1)
	colabCh := make(chan colaboradoresResult, 1)

	go func() {
		items, err := l.costos.List(ctx)
		costosCh <- costosResult{items, err}
	}()
	go func() {
		items, err := l.colaboradores.List(ctx)
		colabCh <- colaboradoresResult{items, err}
	}()

	costos := <-costosCh
	colab := <-colabCh

	if costos.err != nil {
		return costing.Snapshot{}, fmt.Errorf("snapshot: costos rígidos: %w", costos.err)
	}
	if colab.err != nil {
		return costing.Snapshot{}, fmt.Errorf("snapshot: colaboradores: %w", colab.err)
	}
	return build(costos.items, colab.items), nil
}

// LoadCartera devuelve el snapshot y los proyectos (filtrados por estado si no es vacío).
// Las tres consultas corren en paralelo.
func (l *Loader) LoadCartera(ctx context.Context, estado string) (Cartera, error) {
	costosCh := make(chan costosResult, 1)
	colabCh := make(chan colaboradoresResult, 1)
	proyCh := make(chan proyectosResult, 1)

	go func() {
		items, err := l.costos.List(ctx)
		costosCh <- costosResult{items, err}
	}()
	go func() {
		items, err := l.colaboradores.List(ctx)
		colabCh <- colaboradoresResult{items, err}
	}()
	go func() {
		items, err := l.proyectos.List(ctx, estado)
		proyCh <- proyectosResult{items, err}
	}()

	costos := <-costosCh
	colab := <-colabCh
	proy := <-proyCh

	if costos.err != nil {
		return Cartera{}, fmt.Errorf("cartera: costos rígidos: %w", costos.err)
	}
	if colab.err != nil {
		return Cartera{}, fmt.Errorf("cartera: colaboradores: %w", colab.err)
	}
	if proy.err != nil {
		return Cartera{}, fmt.Errorf("cartera: proyectos: %w", proy.err)
	}

	proyectos := make([]entity.Proyecto, 0, len(proy.items))
	for _, p := range proy.items {
		if p != nil {
			proyectos = append(proyectos, *p)
		}
	}
	return Cartera{Snapshot: build(costos.items, colab.items), Proyectos: proyectos}, nil
}

func build(costos []*entity.CostoRigido, colaboradores []*entity.Colaborador) costing.Snapshot {
	snap := costing.Snapshot{
		CostosRigidos: make([]entity.CostoRigido, 0, len(costos)),
		Colaboradores: make([]entity.Colaborador, 0, len(colaboradores)),
	}
	for _, c := range costos {
		if c != nil {
			snap.CostosRigidos = append(snap.CostosRigidos, *c)
		}
	}
	for _, c := range colaboradores {
		if c != nil {
			snap.Colaboradores = append(snap.Colaboradores, *c)
		}
	}
	return snap
}
