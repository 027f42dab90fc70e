package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCostoRigidoRequest entrada para crear un costo rígido.
type CreateCostoRigidoRequest struct {
	Nombre      string          `json:"nombre"`
	Tipo        string          `json:"tipo"`
	Valor       decimal.Decimal `json:"valor"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
}

// UpdateCostoRigidoRequest entrada para actualizar un costo rígido (campos opcionales).
type UpdateCostoRigidoRequest struct {
	Nombre      *string          `json:"nombre"`
	Tipo        *string          `json:"tipo"`
	Valor       *decimal.Decimal `json:"valor"`
	Descripcion *string          `json:"descripcion"`
	Categoria   *string          `json:"categoria"`
}

// CostoRigidoResponse salida de un costo rígido.
type CostoRigidoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Tipo        string          `json:"tipo"`
	Valor       decimal.Decimal `json:"valor"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CostoRigidoListResponse lista de costos rígidos.
type CostoRigidoListResponse struct {
	Items []CostoRigidoResponse `json:"items"`
	Meta  ListMeta              `json:"meta"`
}
