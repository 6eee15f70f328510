package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarcarLeidaSetOnce(t *testing.T) {
	n := NotificacionModel{}
	primera := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	cambio := n.MarcarLeida(primera)
	assert.True(t, cambio)
	assert.True(t, n.Leida)
	require.NotNil(t, n.FechaLectura)
	assert.Equal(t, primera, *n.FechaLectura)

	// segunda lectura: no cambia nada, la fecha original se conserva
	segunda := primera.Add(2 * time.Hour)
	cambio = n.MarcarLeida(segunda)
	assert.False(t, cambio)
	assert.Equal(t, primera, *n.FechaLectura)
}
