package memory

import (
	"context"

	"github.com/jhoicas/Costeo-api/internal/application/importer"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ importer.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn sobre los almacenes en memoria. No hay rollback: el
// importador valida todo antes de escribir.
type TxRunner struct {
	costos        *CostoRigidoRepo
	colaboradores *ColaboradorRepo
}

// NewTxRunner construye el runner sobre los almacenes dados.
func NewTxRunner(costos *CostoRigidoRepo, colaboradores *ColaboradorRepo) *TxRunner {
	return &TxRunner{costos: costos, colaboradores: colaboradores}
}

// Run ejecuta fn con los almacenes.
func (r *TxRunner) Run(_ context.Context, fn func(
	costos repository.CostoRigidoRepository,
	colaboradores repository.ColaboradorRepository,
) error) error {
	return fn(r.costos, r.colaboradores)
}
