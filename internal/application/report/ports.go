package report

import (
	"context"
	"time"

	"github.com/jhoicas/Costeo-api/internal/domain/costing"
)

// QuoteForPDF datos que necesita el generador para la cotización impresa.
type QuoteForPDF struct {
	Empresa   string
	Fecha     time.Time
	Resultado costing.ResultadoProyecto
}

// ProjectPDFGenerator genera la cotización de un proyecto en PDF.
type ProjectPDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q QuoteForPDF) ([]byte, error)
}

// QuoteSource obtiene el resultado del motor para un proyecto guardado.
type QuoteSource interface {
	Resultado(ctx context.Context, projectID string) (costing.ResultadoProyecto, error)
}
