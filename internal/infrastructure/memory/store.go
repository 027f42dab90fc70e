// Package memory implementa los puertos de repositorio en memoria.
// Se usa en tests y con STORAGE=memory para demos sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var (
	_ repository.CostoRigidoRepository = (*CostoRigidoRepo)(nil)
	_ repository.ColaboradorRepository = (*ColaboradorRepo)(nil)
	_ repository.ProyectoRepository    = (*ProyectoRepo)(nil)
)

// CostoRigidoRepo almacén en memoria de costos rígidos.
type CostoRigidoRepo struct {
	mu    sync.RWMutex
	items map[string]entity.CostoRigido
}

// NewCostoRigidoRepository construye el almacén vacío.
func NewCostoRigidoRepository() *CostoRigidoRepo {
	return &CostoRigidoRepo{items: make(map[string]entity.CostoRigido)}
}

func (r *CostoRigidoRepo) Create(_ context.Context, c *entity.CostoRigido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, existing := range r.items {
		if strings.EqualFold(existing.Nombre, c.Nombre) {
			return domain.ErrDuplicate
		}
	}
	r.items[c.ID] = *c
	return nil
}

func (r *CostoRigidoRepo) GetByID(_ context.Context, id string) (*entity.CostoRigido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CostoRigidoRepo) Update(_ context.Context, c *entity.CostoRigido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.items {
		if id != c.ID && strings.EqualFold(existing.Nombre, c.Nombre) {
			return domain.ErrDuplicate
		}
	}
	r.items[c.ID] = *c
	return nil
}

func (r *CostoRigidoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *CostoRigidoRepo) List(_ context.Context) ([]*entity.CostoRigido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.CostoRigido, 0, len(r.items))
	for _, c := range r.items {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Categoria != list[j].Categoria {
			return list[i].Categoria < list[j].Categoria
		}
		return list[i].Nombre < list[j].Nombre
	})
	return list, nil
}

// ColaboradorRepo almacén en memoria de colaboradores.
type ColaboradorRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Colaborador
}

// NewColaboradorRepository construye el almacén vacío.
func NewColaboradorRepository() *ColaboradorRepo {
	return &ColaboradorRepo{items: make(map[string]entity.Colaborador)}
}

func (r *ColaboradorRepo) Create(_ context.Context, c *entity.Colaborador) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[c.ID] = copyColaborador(*c)
	return nil
}

func (r *ColaboradorRepo) GetByID(_ context.Context, id string) (*entity.Colaborador, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c = copyColaborador(c)
	return &c, nil
}

func (r *ColaboradorRepo) Update(_ context.Context, c *entity.Colaborador) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[c.ID] = copyColaborador(*c)
	return nil
}

func (r *ColaboradorRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ColaboradorRepo) List(_ context.Context) ([]*entity.Colaborador, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Colaborador, 0, len(r.items))
	for _, c := range r.items {
		c := copyColaborador(c)
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return list, nil
}

func (r *ColaboradorRepo) CountByCostoRigido(_ context.Context, costoRigidoID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, c := range r.items {
		for _, id := range c.CostosRigidos {
			if id == costoRigidoID {
				n++
				break
			}
		}
	}
	return n, nil
}

// ProyectoRepo almacén en memoria de proyectos. Conserva el orden de inserción.
type ProyectoRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Proyecto
	order []string
}

// NewProyectoRepository construye el almacén vacío.
func NewProyectoRepository() *ProyectoRepo {
	return &ProyectoRepo{items: make(map[string]entity.Proyecto)}
}

func (r *ProyectoRepo) Create(_ context.Context, p *entity.Proyecto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = copyProyecto(*p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *ProyectoRepo) GetByID(_ context.Context, id string) (*entity.Proyecto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	p = copyProyecto(p)
	return &p, nil
}

func (r *ProyectoRepo) Update(_ context.Context, p *entity.Proyecto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.ID] = copyProyecto(*p)
	return nil
}

func (r *ProyectoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProyectoRepo) List(_ context.Context, estado string) ([]*entity.Proyecto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Proyecto, 0, len(r.order))
	for _, id := range r.order {
		p := r.items[id]
		if estado != "" && p.Estado != estado {
			continue
		}
		p = copyProyecto(p)
		list = append(list, &p)
	}
	return list, nil
}

func (r *ProyectoRepo) CountByColaborador(_ context.Context, colaboradorID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.items {
		for _, a := range p.Colaboradores {
			if a.ColaboradorID == colaboradorID {
				n++
				break
			}
		}
	}
	return n, nil
}

func copyColaborador(c entity.Colaborador) entity.Colaborador {
	c.CostosRigidos = append([]string(nil), c.CostosRigidos...)
	c.Tecnologias = append([]string(nil), c.Tecnologias...)
	return c
}

func copyProyecto(p entity.Proyecto) entity.Proyecto {
	p.Colaboradores = append([]entity.ProyectoColaborador(nil), p.Colaboradores...)
	return p
}
