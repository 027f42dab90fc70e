package xlsx_test

import (
	"bytes"
	"testing"

	"github.com/jhoicas/Costeo-api/internal/infrastructure/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func TestReadTables_ExcelTodasLasHojas(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "CostosRigidos"))
	require.NoError(t, f.SetSheetRow("CostosRigidos", "A1", &[]any{"Nombre", "Tipo"}))
	require.NoError(t, f.SetSheetRow("CostosRigidos", "A2", &[]any{"IPS", "porcentaje"}))
	_, err := f.NewSheet("Colaboradores")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Colaboradores", "A1", &[]any{"Nombre"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tablas, err := xlsx.NewTableReader().ReadTables(&buf, "Planilla.XLSX", "Colaboradores")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"Nombre", "Tipo"}, {"IPS", "porcentaje"}}, tablas["CostosRigidos"])
	assert.Equal(t, [][]string{{"Nombre"}}, tablas["Colaboradores"])
}

func TestReadTables_ExcelNumerosSinFormato(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "CostosRigidos"))
	require.NoError(t, f.SetSheetRow("CostosRigidos", "A1", &[]any{"Nombre", "Valor"}))
	require.NoError(t, f.SetCellValue("CostosRigidos", "A2", "Almuerzo"))
	require.NoError(t, f.SetCellValue("CostosRigidos", "B2", 300000))
	miles, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("CostosRigidos", "B2", "B2", miles))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tablas, err := xlsx.NewTableReader().ReadTables(&buf, "planilla.xlsx", "Colaboradores")
	require.NoError(t, err)
	assert.Equal(t, []string{"Almuerzo", "300000"}, tablas["CostosRigidos"][1])
}

func TestReadTables_CSVPuntoYComaWindows1252(t *testing.T) {
	texto := "Nombre;Salario Bruto;Horas Mensuales\nJosé Núñez;4.000.000;160\n"
	raw, err := charmap.Windows1252.NewEncoder().String(texto)
	require.NoError(t, err)

	tablas, err := xlsx.NewTableReader().ReadTables(bytes.NewReader([]byte(raw)), "equipo.csv", "Colaboradores")
	require.NoError(t, err)

	rows := tablas["Colaboradores"]
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"José Núñez", "4.000.000", "160"}, rows[1])
}

func TestReadTables_CSVComaConBOM(t *testing.T) {
	raw := "\xef\xbb\xbfNombre,Horas Mensuales\nAna, 160\n"
	tablas, err := xlsx.NewTableReader().ReadTables(bytes.NewReader([]byte(raw)), "equipo.csv", "Colaboradores")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Nombre", "Horas Mensuales"}, {"Ana", "160"}}, tablas["Colaboradores"])
}

func TestReadTables_FormatoNoSoportado(t *testing.T) {
	_, err := xlsx.NewTableReader().ReadTables(bytes.NewReader(nil), "equipo.ods", "Colaboradores")
	assert.ErrorContains(t, err, "formato no soportado")
}
