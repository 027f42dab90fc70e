package xlsx

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Costeo-api/internal/application/importer"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var _ importer.TableReader = (*TableReader)(nil)

// TableReader lee planillas .xlsx (todas las hojas) o .csv (una tabla).
type TableReader struct{}

// NewTableReader construye el lector.
func NewTableReader() *TableReader { return &TableReader{} }

// ReadTables devuelve las filas de cada hoja indexadas por nombre de hoja.
// Un CSV se devuelve como una única tabla con el nombre indicado en csvTable.
func (r *TableReader) ReadTables(file io.Reader, fileName, csvTable string) (map[string][][]string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return readExcel(file)
	case ".csv":
		rows, err := readCSV(file)
		if err != nil {
			return nil, err
		}
		return map[string][][]string{csvTable: rows}, nil
	default:
		return nil, fmt.Errorf("formato no soportado %q: debe ser .csv o .xlsx", fileName)
	}
}

func readExcel(file io.Reader) (map[string][][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("abrir Excel: %w", err)
	}
	defer f.Close()

	// Valores crudos: una celda 300000 con formato #,##0 no debe leerse como "300,000".
	out := make(map[string][][]string)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("leer hoja %s: %w", sheet, err)
		}
		out[sheet] = rows
	}
	return out, nil
}

// readCSV acepta UTF-8 o Windows-1252 (lo que exporta Excel en español) y
// separador coma o punto y coma.
func readCSV(file io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	if primera, _, _ := bytes.Cut(raw, []byte("\n")); bytes.Count(primera, []byte(";")) > bytes.Count(primera, []byte(",")) {
		reader.Comma = ';'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear CSV: %w", err)
	}
	return rows, nil
}
