package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestionemb_backend/internals/constants"
)

func TestSetDefaultValues(t *testing.T) {
	vacio := &PerfilModel{}
	vacio.SetDefaultValues()
	assert.Equal(t, constants.RolEstudiante, vacio.Rol)

	// un rol desconocido también cae al default
	raro := &PerfilModel{Rol: "superadmin"}
	raro.SetDefaultValues()
	assert.Equal(t, constants.RolEstudiante, raro.Rol)

	admin := &PerfilModel{Rol: constants.RolAdministrador}
	admin.SetDefaultValues()
	assert.Equal(t, constants.RolAdministrador, admin.Rol)
}
