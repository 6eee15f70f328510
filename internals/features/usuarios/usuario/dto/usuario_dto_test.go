package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestionemb_backend/internals/constants"
	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

func TestCreateUsuarioRequestNormalize(t *testing.T) {
	r := CreateUsuarioRequest{
		UserName: "  mgarcia ",
		Email:    " MGarcia@Uni.EDU ",
		Nombre:   " María ",
		Rol:      " Administrador ",
	}
	r.Normalize()

	assert.Equal(t, "mgarcia", r.UserName)
	assert.Equal(t, "mgarcia@uni.edu", r.Email)
	assert.Equal(t, "María", r.Nombre)
	assert.Equal(t, "administrador", r.Rol)
}

func TestToModelsDefaults(t *testing.T) {
	r := CreateUsuarioRequest{
		UserName: "mgarcia",
		Email:    "mgarcia@uni.edu",
		Password: "secreto123",
		Nombre:   "María",
	}
	u, p := r.ToModels()

	assert.True(t, u.Activo)
	assert.Equal(t, constants.RolEstudiante, p.Rol) // rol vacío cae al default

	inactivo := false
	r.Activo = &inactivo
	u, _ = r.ToModels()
	assert.False(t, u.Activo)
}

func TestApplyToModelsParcial(t *testing.T) {
	tel := "555-0101"
	u := uModel.UsuarioModel{Email: "viejo@uni.edu"}
	p := uModel.PerfilModel{Nombre: "María", Apellidos: "García", Telefono: &tel}

	nuevoEmail := "nuevo@uni.edu"
	r := UpdatePerfilRequest{Email: &nuevoEmail}
	r.ApplyToModels(&u, &p)

	// solo cambia lo enviado; el resto queda intacto
	assert.Equal(t, "nuevo@uni.edu", u.Email)
	assert.Equal(t, "María", p.Nombre)
	assert.Equal(t, "García", p.Apellidos)
	assert.Equal(t, &tel, p.Telefono)

	nuevoNombre := "María José"
	r = UpdatePerfilRequest{Nombre: &nuevoNombre}
	r.ApplyToModels(&u, &p)
	assert.Equal(t, "María José", p.Nombre)
	assert.Equal(t, "nuevo@uni.edu", u.Email)
}
