package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Costeo-api/internal/application/analytics"
	"github.com/jhoicas/Costeo-api/internal/application/importer"
	"github.com/jhoicas/Costeo-api/internal/application/quote"
	"github.com/jhoicas/Costeo-api/internal/application/report"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RigidCostUC    *usecase.RigidCostUseCase
	CollaboratorUC *usecase.CollaboratorUseCase
	ProjectUC      *usecase.ProjectUseCase
	QuoteUC        *quote.QuoteUseCase
	PDFUC          *report.PDFUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ReportsUC      *appanalytics.ReportsUseCase
	ImportUC       *importer.ImportUseCase
	JWTSecret      string
	JWTIssuer      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Todas las rutas /api requieren Bearer Token; las de escritura, rol admin.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	lectura := RequireRole(RoleAdmin, RoleAnalista)
	escritura := RequireRole(RoleAdmin)

	costos := api.Group("/costos-rigidos")
	costoHandler := NewRigidCostHandler(deps.RigidCostUC)
	costos.Get("/", lectura, costoHandler.List)
	costos.Post("/", escritura, costoHandler.Create)
	costos.Get("/:id", lectura, costoHandler.GetByID)
	costos.Put("/:id", escritura, costoHandler.Update)
	costos.Delete("/:id", escritura, costoHandler.Delete)

	colaboradores := api.Group("/colaboradores")
	colaboradorHandler := NewCollaboratorHandler(deps.CollaboratorUC)
	colaboradores.Get("/", lectura, colaboradorHandler.List)
	colaboradores.Post("/", escritura, colaboradorHandler.Create)
	colaboradores.Get("/:id", lectura, colaboradorHandler.GetByID)
	colaboradores.Put("/:id", escritura, colaboradorHandler.Update)
	colaboradores.Delete("/:id", escritura, colaboradorHandler.Delete)

	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PDFUC)

	proyectos := api.Group("/proyectos")
	proyectoHandler := NewProjectHandler(deps.ProjectUC)
	proyectos.Get("/", lectura, proyectoHandler.List)
	proyectos.Post("/", escritura, proyectoHandler.Create)
	proyectos.Get("/:id", lectura, proyectoHandler.GetByID)
	proyectos.Put("/:id", escritura, proyectoHandler.Update)
	proyectos.Delete("/:id", escritura, proyectoHandler.Delete)
	proyectos.Get("/:id/cotizacion", lectura, quoteHandler.Calculate)
	proyectos.Get("/:id/cotizacion/pdf", lectura, quoteHandler.DownloadPDF)

	// La simulación no persiste nada: la puede usar cualquier rol.
	api.Post("/cotizaciones/simular", lectura, quoteHandler.Simulate)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", lectura, dashboardHandler.GetSummary)

	reportsHandler := NewReportsHandler(deps.ReportsUC)
	api.Get("/reportes", lectura, reportsHandler.Get)
	api.Get("/reportes/export", lectura, reportsHandler.Export)

	if deps.ImportUC != nil {
		importHandler := NewImportHandler(deps.ImportUC)
		api.Post("/importar", escritura, importHandler.Import)
	}
}
