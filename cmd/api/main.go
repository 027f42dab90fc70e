package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Costeo-api/internal/application/analytics"
	"github.com/jhoicas/Costeo-api/internal/application/importer"
	"github.com/jhoicas/Costeo-api/internal/application/quote"
	"github.com/jhoicas/Costeo-api/internal/application/report"
	"github.com/jhoicas/Costeo-api/internal/application/snapshot"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Costeo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Costeo-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Costeo-api/internal/interfaces/http"
	"github.com/jhoicas/Costeo-api/pkg/config"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

// storage agrupa los repositorios del backend elegido.
type storage struct {
	costos        repository.CostoRigidoRepository
	colaboradores repository.ColaboradorRepository
	proyectos     repository.ProyectoRepository
	tx            importer.TxRunner
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store := openStorage(ctx, cfg, log)
	defer store.close()

	calc := costing.NewCalculadora(costing.Parametros{
		FactorRiesgoPorDefecto: cfg.Costeo.FactorRiesgo,
		TasaIVA:                cfg.Costeo.TasaIVA,
	})
	loader := snapshot.NewLoader(store.costos, store.colaboradores, store.proyectos)

	rigidCostUC := usecase.NewRigidCostUseCase(store.costos, store.colaboradores)
	collaboratorUC := usecase.NewCollaboratorUseCase(store.colaboradores, store.costos, store.proyectos)
	projectUC := usecase.NewProjectUseCase(store.proyectos)
	quoteUC := quote.NewQuoteUseCase(store.proyectos, loader, calc, log.Componente("cotizacion"))
	dashboardUC := appanalytics.NewDashboardUseCase(loader, calc, log.Componente("dashboard"))
	reportsUC := appanalytics.NewReportsUseCase(loader, calc, infraxlsx.NewReportExporter(), cfg.Costeo.Empresa, log.Componente("reportes"))
	pdfUC := report.NewPDFUseCase(quoteUC, infrapdf.NewMarotoPDFGenerator(), cfg.Costeo.Empresa)
	importUC := importer.NewImportUseCase(infraxlsx.NewTableReader(), store.tx, store.costos, log.Componente("importacion"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Costeo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		RigidCostUC:    rigidCostUC,
		CollaboratorUC: collaboratorUC,
		ProjectUC:      projectUC,
		QuoteUC:        quoteUC,
		PDFUC:          pdfUC,
		DashboardUC:    dashboardUC,
		ReportsUC:      reportsUC,
		ImportUC:       importUC,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage conecta PostgreSQL (y aplica migraciones si DB_MIGRATE) o arma
// los repositorios en memoria para demos y desarrollo sin base.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage {
	if cfg.App.Storage == config.StorageMemory {
		costos := memory.NewCostoRigidoRepository()
		colaboradores := memory.NewColaboradorRepository()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return storage{
			costos:        costos,
			colaboradores: colaboradores,
			proyectos:     memory.NewProyectoRepository(),
			tx:            memory.NewTxRunner(costos, colaboradores),
			close:         func() {},
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.DB.Migrate {
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return storage{
		costos:        postgres.NewCostoRigidoRepository(pool),
		colaboradores: postgres.NewColaboradorRepository(pool),
		proyectos:     postgres.NewProyectoRepository(pool),
		tx:            postgres.NewTxRunner(pool),
		close:         pool.Close,
	}
}
