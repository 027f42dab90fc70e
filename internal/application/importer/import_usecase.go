// Package importer carga costos rígidos y colaboradores desde una planilla
// (.xlsx con hojas CostosRigidos y Colaboradores, o .csv solo de colaboradores).
// La importación es todo o nada: si alguna fila es inválida no se escribe nada.
package importer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Hojas esperadas en la planilla.
const (
	HojaCostosRigidos = "CostosRigidos"
	HojaColaboradores = "Colaboradores"
)

// ImportUseCase valida la planilla completa y la escribe en una transacción.
type ImportUseCase struct {
	reader TableReader
	tx     TxRunner
	costos repository.CostoRigidoRepository
	log    *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(reader TableReader, tx TxRunner, costos repository.CostoRigidoRepository, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{reader: reader, tx: tx, costos: costos, log: log}
}

// Importar procesa el archivo. Si hay errores de validación, el resultado los
// lista y no se persiste ninguna fila.
func (uc *ImportUseCase) Importar(ctx context.Context, file io.Reader, fileName string) (*dto.ImportResult, error) {
	tablas, err := uc.reader.ReadTables(file, fileName, HojaColaboradores)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if _, ok := tablas[HojaColaboradores]; !ok {
		if _, ok := tablas[HojaCostosRigidos]; !ok {
			return nil, fmt.Errorf("%w: la planilla debe tener la hoja %s o %s", domain.ErrInvalidInput, HojaCostosRigidos, HojaColaboradores)
		}
	}

	existentes, err := uc.costos.List(ctx)
	if err != nil {
		return nil, err
	}
	catalogo := make([]entity.CostoRigido, 0, len(existentes))
	porNombre := make(map[string]string, len(existentes))
	for _, c := range existentes {
		catalogo = append(catalogo, *c)
		porNombre[clave(c.Nombre)] = c.ID
	}

	res := &dto.ImportResult{Errores: make([]dto.ImportError, 0)}
	now := time.Now()

	nuevosCostos := parseCostos(tablas[HojaCostosRigidos], porNombre, now, res)
	for _, c := range nuevosCostos {
		catalogo = append(catalogo, *c)
		porNombre[clave(c.Nombre)] = c.ID
	}
	nuevosColab := parseColaboradores(tablas[HojaColaboradores], porNombre, catalogo, now, res)

	res.FilasCostosRigidos = len(nuevosCostos)
	res.FilasColaboradores = len(nuevosColab)
	if len(res.Errores) > 0 {
		res.FilasCostosRigidos, res.FilasColaboradores = 0, 0
		return res, nil
	}

	err = uc.tx.Run(ctx, func(costos repository.CostoRigidoRepository, colaboradores repository.ColaboradorRepository) error {
		for _, c := range nuevosCostos {
			if err := costos.Create(ctx, c); err != nil {
				return fmt.Errorf("costo rígido %q: %w", c.Nombre, err)
			}
		}
		for _, c := range nuevosColab {
			if err := colaboradores.Create(ctx, c); err != nil {
				return fmt.Errorf("colaborador %q: %w", c.Nombre, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("archivo", fileName).
		Int("costos_rigidos", res.FilasCostosRigidos).
		Int("colaboradores", res.FilasColaboradores).
		Msg("planilla importada")
	return res, nil
}

// parseCostos convierte la hoja de costos. Los nombres ya existentes se omiten.
func parseCostos(rows [][]string, porNombre map[string]string, now time.Time, res *dto.ImportResult) []*entity.CostoRigido {
	if len(rows) < 2 {
		return nil
	}
	cols := indexHeaders(rows[0])
	out := make([]*entity.CostoRigido, 0, len(rows)-1)
	vistos := make(map[string]struct{})
	for i, row := range rows[1:] {
		fila := i + 2
		get := cellGetter(row, cols)
		if filaVacia(row) {
			continue
		}
		nombre := get("nombre")
		if _, ok := porNombre[clave(nombre)]; ok {
			res.Omitidos++
			continue
		}
		if _, dup := vistos[clave(nombre)]; dup {
			res.AddError(HojaCostosRigidos, fila, "nombre", "nombre repetido en la planilla")
			continue
		}
		vistos[clave(nombre)] = struct{}{}

		valor, err := parseDecimal(get("valor"))
		if err != nil {
			res.AddError(HojaCostosRigidos, fila, "valor", err.Error())
			continue
		}
		c := &entity.CostoRigido{
			ID:          uuid.New().String(),
			Nombre:      nombre,
			Tipo:        strings.ToLower(get("tipo")),
			Valor:       valor,
			Descripcion: get("descripcion"),
			Categoria:   strings.ToLower(get("categoria")),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := usecase.ValidarCostoRigido(c); err != nil {
			res.AddError(HojaCostosRigidos, fila, "", err.Error())
			continue
		}
		out = append(out, c)
	}
	return out
}

// parseColaboradores convierte la hoja de colaboradores. La columna costos_rigidos
// lista nombres separados por ";" y se resuelven contra el catálogo.
func parseColaboradores(
	rows [][]string,
	porNombre map[string]string,
	catalogo []entity.CostoRigido,
	now time.Time,
	res *dto.ImportResult,
) []*entity.Colaborador {
	if len(rows) < 2 {
		return nil
	}
	cols := indexHeaders(rows[0])
	out := make([]*entity.Colaborador, 0, len(rows)-1)
	for i, row := range rows[1:] {
		fila := i + 2
		if filaVacia(row) {
			continue
		}
		get := cellGetter(row, cols)

		salario, err := parseDecimal(get("salario_bruto"))
		if err != nil {
			res.AddError(HojaColaboradores, fila, "salario_bruto", err.Error())
			continue
		}
		horas, err := parseDecimal(get("horas_mensuales"))
		if err != nil {
			res.AddError(HojaColaboradores, fila, "horas_mensuales", err.Error())
			continue
		}
		disponibilidad := decimal.NewFromInt(100)
		if v := get("disponibilidad"); v != "" {
			if disponibilidad, err = parseDecimal(v); err != nil {
				res.AddError(HojaColaboradores, fila, "disponibilidad", err.Error())
				continue
			}
		}
		antiguedad := 0
		if v := get("antiguedad"); v != "" {
			if antiguedad, err = strconv.Atoi(v); err != nil {
				res.AddError(HojaColaboradores, fila, "antiguedad", "debe ser un número entero")
				continue
			}
		}

		ids := make([]string, 0)
		desconocido := ""
		for _, nombre := range splitList(get("costos_rigidos")) {
			id, ok := porNombre[clave(nombre)]
			if !ok {
				desconocido = nombre
				break
			}
			ids = append(ids, id)
		}
		if desconocido != "" {
			res.AddError(HojaColaboradores, fila, "costos_rigidos", fmt.Sprintf("costo rígido %q no existe", desconocido))
			continue
		}

		c := &entity.Colaborador{
			ID:             uuid.New().String(),
			Nombre:         get("nombre"),
			SalarioBruto:   salario,
			Antiguedad:     antiguedad,
			HorasMensuales: horas,
			CostosRigidos:  ids,
			Rol:            get("rol"),
			Nivel:          strings.ToLower(get("nivel")),
			Tecnologias:    splitList(get("tecnologias")),
			Disponibilidad: disponibilidad,
			Activo:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := usecase.ValidarColaborador(c, catalogo); err != nil {
			res.AddError(HojaColaboradores, fila, "", err.Error())
			continue
		}
		out = append(out, c)
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func indexHeaders(headers []string) map[string]int {
	out := make(map[string]int, len(headers))
	for i, h := range headers {
		k := strings.ToLower(strings.TrimSpace(h))
		k = strings.TrimSuffix(k, " *")
		k = strings.ReplaceAll(k, " ", "_")
		out[k] = i
	}
	return out
}

func cellGetter(row []string, cols map[string]int) func(string) string {
	return func(key string) string {
		i, ok := cols[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
}

func filaVacia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDecimal acepta números en formato local o crudo:
//
//	"5000000", "5.000.000", "300.000", "300,000" -> miles
//	"35937,5", "1.5", "1,5", "1.234,56", "1,234.56" -> decimales
//
// Un único separador seguido de exactamente tres dígitos, con parte entera
// distinta de cero, se toma como separador de miles. Con ambos separadores
// presentes el último es el decimal. Agrupaciones irregulares ("1.23.4") son error.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor requerido")
	}
	signo := ""
	cuerpo := s
	if strings.HasPrefix(cuerpo, "-") {
		signo, cuerpo = "-", cuerpo[1:]
	}

	entero, fraccion, ok := separarNumero(cuerpo)
	if !ok {
		return decimal.Zero, fmt.Errorf("número inválido %q", s)
	}
	normalizado := signo + entero
	if fraccion != "" {
		normalizado += "." + fraccion
	}
	d, err := decimal.NewFromString(normalizado)
	if err != nil {
		return decimal.Zero, fmt.Errorf("número inválido %q", s)
	}
	return d, nil
}

// separarNumero devuelve la parte entera (sin separadores de miles) y la fracción.
func separarNumero(s string) (entero, fraccion string, ok bool) {
	punto, coma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case punto >= 0 && coma >= 0:
		dec, miles := ".", ","
		if coma > punto {
			dec, miles = ",", "."
		}
		if strings.Count(s, dec) > 1 {
			return "", "", false
		}
		entero, fraccion, _ = strings.Cut(s, dec)
		entero, ok = sinMiles(entero, miles)
		return entero, fraccion, ok && fraccion != ""
	case punto >= 0 || coma >= 0:
		sep := "."
		if coma >= 0 {
			sep = ","
		}
		if strings.Count(s, sep) > 1 {
			entero, ok = sinMiles(s, sep)
			return entero, "", ok
		}
		antes, despues, _ := strings.Cut(s, sep)
		if len(despues) == 3 && len(antes) >= 1 && len(antes) <= 3 && strings.TrimLeft(antes, "0") != "" {
			return antes + despues, "", soloDigitos(antes + despues)
		}
		return antes, despues, antes != "" && despues != ""
	default:
		return s, "", true
	}
}

// sinMiles quita el separador de miles validando grupos de tres dígitos.
func sinMiles(s, sep string) (string, bool) {
	grupos := strings.Split(s, sep)
	if len(grupos[0]) < 1 || len(grupos[0]) > 3 {
		return "", false
	}
	for _, g := range grupos[1:] {
		if len(g) != 3 {
			return "", false
		}
	}
	out := strings.Join(grupos, "")
	return out, soloDigitos(out)
}

func soloDigitos(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func clave(nombre string) string {
	return strings.ToLower(strings.TrimSpace(nombre))
}
