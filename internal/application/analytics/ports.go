package analytics

import "github.com/jhoicas/Costeo-api/internal/application/dto"

// ReportExporter genera el archivo descargable de la página de Reportes.
type ReportExporter interface {
	ExportReport(report *dto.ReportDTO, empresa string) ([]byte, error)
}
