package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestionemb_backend/internals/constants"
)

// Registrar jamás debe romper la acción principal: sin DB simplemente
// loguea y vuelve.
func TestRegistrarSinDBNoPaniquea(t *testing.T) {
	assert.NotPanics(t, func() {
		Registrar(nil, Entrada{
			Accion:  constants.AccionCrear,
			Entidad: constants.EntidadProtocolo,
		})
	})
}
