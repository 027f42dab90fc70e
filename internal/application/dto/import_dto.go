package dto

// ImportError error de validación de una celda o fila de la planilla.
type ImportError struct {
	Hoja    string `json:"hoja"`
	Fila    int    `json:"fila"`
	Campo   string `json:"campo,omitempty"`
	Mensaje string `json:"mensaje"`
}

// ImportResult resultado de POST /api/importar.
// Con errores, las filas importadas son cero: la importación es todo o nada.
type ImportResult struct {
	FilasCostosRigidos int           `json:"filas_costos_rigidos"`
	FilasColaboradores int           `json:"filas_colaboradores"`
	Omitidos           int           `json:"omitidos"` // costos rígidos que ya existían por nombre
	Errores            []ImportError `json:"errores"`
}

// AddError agrega un error de validación.
func (r *ImportResult) AddError(hoja string, fila int, campo, mensaje string) {
	r.Errores = append(r.Errores, ImportError{Hoja: hoja, Fila: fila, Campo: campo, Mensaje: mensaje})
}
