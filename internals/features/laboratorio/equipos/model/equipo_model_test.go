package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fecha(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestNecesitaMantenimientoPronto(t *testing.T) {
	hoy, _ := time.Parse("2006-01-02", "2026-08-29")

	// sin fecha programada no hay aviso
	e := EquipoModel{}
	assert.False(t, e.NecesitaMantenimientoPronto(hoy))

	// dentro de la ventana
	e.FechaProximoMantenimiento = fecha("2026-09-02")
	assert.True(t, e.NecesitaMantenimientoPronto(hoy))

	// justo en el borde (hoy + 7 días) todavía avisa
	e.FechaProximoMantenimiento = fecha("2026-09-05")
	assert.True(t, e.NecesitaMantenimientoPronto(hoy))

	// un día más allá de la ventana, no
	e.FechaProximoMantenimiento = fecha("2026-09-06")
	assert.False(t, e.NecesitaMantenimientoPronto(hoy))

	// vencido (en el pasado) también avisa
	e.FechaProximoMantenimiento = fecha("2026-08-01")
	assert.True(t, e.NecesitaMantenimientoPronto(hoy))
}
