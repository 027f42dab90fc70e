// importar carga costos rígidos y colaboradores desde una planilla directo a PostgreSQL,
// con las mismas validaciones que POST /api/importar.
//
// Uso: go run ./cmd/importar ruta/planilla.xlsx
// Acepta .xlsx (hojas CostosRigidos y Colaboradores) o .csv de colaboradores
// (UTF-8 o Windows-1252, separador coma o punto y coma).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Costeo-api/internal/application/importer"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Costeo-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Costeo-api/pkg/config"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: importar <planilla.xlsx|planilla.csv>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{App: cfg.App.Name + "-importar", Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir planilla: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()
	if cfg.DB.Migrate {
		if err := postgres.Migrate(pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	uc := importer.NewImportUseCase(
		infraxlsx.NewTableReader(),
		postgres.NewTxRunner(pool),
		postgres.NewCostoRigidoRepository(pool),
		log,
	)
	res, err := uc.Importar(ctx, f, filepath.Base(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(res)
	if len(res.Errores) > 0 {
		fmt.Fprintf(os.Stderr, "%d errores: no se importó ninguna fila\n", len(res.Errores))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Importados %d costos rígidos y %d colaboradores (%d omitidos)\n",
		res.FilasCostosRigidos, res.FilasColaboradores, res.Omitidos)
}
