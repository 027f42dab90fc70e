package importer

import (
	"context"
	"io"

	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// TableReader lee una planilla subida y devuelve sus filas por hoja.
type TableReader interface {
	ReadTables(file io.Reader, fileName, csvTable string) (map[string][][]string, error)
}

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		costos repository.CostoRigidoRepository,
		colaboradores repository.ColaboradorRepository,
	) error) error
}
