package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gestionemb_backend/internals/constants"
	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

func perfilAdmin() *uModel.PerfilModel {
	return &uModel.PerfilModel{Rol: constants.RolAdministrador}
}

func perfilEstudiante() *uModel.PerfilModel {
	return &uModel.PerfilModel{Rol: constants.RolEstudiante}
}

func TestEsAdministrador(t *testing.T) {
	assert.True(t, EsAdministrador(perfilAdmin()))
	assert.False(t, EsAdministrador(perfilEstudiante()))
	// perfil ausente → nunca admin, nunca panic
	assert.False(t, EsAdministrador(nil))
	// rol desconocido tampoco es admin
	assert.False(t, EsAdministrador(&uModel.PerfilModel{Rol: "superuser"}))
}

func TestPuedeEditarUsuario(t *testing.T) {
	admin := uuid.New()
	alumno := uuid.New()
	otro := uuid.New()

	// admin edita a cualquiera
	assert.True(t, PuedeEditarUsuario(admin, perfilAdmin(), otro))
	// cada quien edita su propio perfil
	assert.True(t, PuedeEditarUsuario(alumno, perfilEstudiante(), alumno))
	// estudiante no edita a terceros
	assert.False(t, PuedeEditarUsuario(alumno, perfilEstudiante(), otro))
	// sin perfil, solo self
	assert.False(t, PuedeEditarUsuario(alumno, nil, otro))
	assert.True(t, PuedeEditarUsuario(alumno, nil, alumno))
}

func TestPuedeCambiarRol(t *testing.T) {
	admin := uuid.New()
	alumno := uuid.New()

	assert.True(t, PuedeCambiarRol(admin, perfilAdmin(), alumno))
	// nunca sobre sí mismo, ni siendo admin
	assert.False(t, PuedeCambiarRol(admin, perfilAdmin(), admin))
	// no-admin jamás cambia roles
	assert.False(t, PuedeCambiarRol(alumno, perfilEstudiante(), admin))
	assert.False(t, PuedeCambiarRol(alumno, perfilEstudiante(), alumno))
	assert.False(t, PuedeCambiarRol(alumno, nil, admin))
}

func TestAutoBloqueoIncondicional(t *testing.T) {
	// para todo actor a: can(a, deactivate, a) == false y can(a, delete, a) == false
	casos := []*uModel.PerfilModel{perfilAdmin(), perfilEstudiante(), nil}
	for _, perfil := range casos {
		a := uuid.New()
		assert.False(t, PuedeCambiarActivo(a, perfil, a))
		assert.False(t, PuedeEliminarUsuario(a, perfil, a))
	}
}

func TestPuedeCambiarActivoYEliminar(t *testing.T) {
	admin := uuid.New()
	alumno := uuid.New()

	assert.True(t, PuedeCambiarActivo(admin, perfilAdmin(), alumno))
	assert.True(t, PuedeEliminarUsuario(admin, perfilAdmin(), alumno))

	assert.False(t, PuedeCambiarActivo(alumno, perfilEstudiante(), admin))
	assert.False(t, PuedeEliminarUsuario(alumno, perfilEstudiante(), admin))
}
