package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

func TestForActor_AgregaCampos(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	l.ForActor(entity.Actor{ID: "u-1", Name: "Carlos", Role: entity.RoleTechnician}).
		Info().Str("module", "orders").Msg("order saved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Carlos", line["actor"])
	assert.Equal(t, "u-1", line["actor_id"])
	assert.Equal(t, "technician", line["role"])
	assert.Equal(t, "orders", line["module"])
	assert.Equal(t, "order saved", line["message"])
}

func TestNivel_FiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	l.Info().Msg("no aparece")
	assert.Zero(t, buf.Len())
	l.Warn().Msg("aparece")
	assert.NotZero(t, buf.Len())
}
