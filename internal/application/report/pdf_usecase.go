// Package report genera el informe PDF de cotización de un proyecto.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Costeo-api/pkg/format"
)

// PDFUseCase genera la cotización imprimible de un proyecto guardado.
// Los números salen del mismo pipeline que usa la calculadora.
type PDFUseCase struct {
	quotes    QuoteSource
	generator ProjectPDFGenerator
	empresa   string
	now       func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(quotes QuoteSource, generator ProjectPDFGenerator, empresa string) *PDFUseCase {
	return &PDFUseCase{quotes: quotes, generator: generator, empresa: empresa, now: time.Now}
}

// DownloadProjectPDF cotiza el proyecto y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el proyecto no existe.
//   - domain.ErrHorasMensualesInvalidas si algún colaborador no se puede cotizar.
func (uc *PDFUseCase) DownloadProjectPDF(ctx context.Context, projectID string) (pdfBytes []byte, filename string, err error) {
	res, err := uc.quotes.Resultado(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, QuoteForPDF{
		Empresa:   uc.empresa,
		Fecha:     uc.now(),
		Resultado: res,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%s.pdf", format.Slug(res.Proyecto.Nombre))
	return pdfBytes, filename, nil
}
