package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn")

	l.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	l.Warn().Str("colaborador_id", "c-1").Msg("colaborador no resuelto")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "c-1", entry["colaborador_id"])
}

func TestNop_NoEscribe(t *testing.T) {
	l := logger.Nop()
	assert.NotPanics(t, func() { l.Error().Msg("x") })
}

func TestNew_EtiquetaAppYEntorno(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{App: "costeo-api", Env: "production", Level: "INFO", Output: &buf})

	l.Debug().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	l.Info().Msg("iniciando")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "costeo-api", entry["app"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_SinAppNoAgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Output: &buf})

	l.Info().Msg("x")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "app")
}

func TestComponente_HeredaCampos(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Config{App: "costeo-api", Env: "production", Output: &buf})

	base.Componente("reportes").Warn().Str("colaborador_id", "fantasma").Msg("colaborador asignado no existe")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "costeo-api", entry["app"])
	assert.Equal(t, "reportes", entry["componente"])
	assert.Equal(t, "fantasma", entry["colaborador_id"])
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verboso", Output: &buf})

	l.Debug().Msg("no")
	assert.Zero(t, buf.Len())
	l.Info().Msg("si")
	assert.NotZero(t, buf.Len())
}
