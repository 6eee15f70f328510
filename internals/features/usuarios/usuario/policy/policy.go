// Package policy contiene las reglas de autorización del sistema.
// Todas las funciones son puras: (actor, acción, objetivo) → permitir/denegar,
// sin efectos secundarios y sin panics. Un perfil ausente nunca lanza error:
// simplemente no es administrador.
package policy

import (
	"github.com/google/uuid"

	"gestionemb_backend/internals/constants"
	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

// EsAdministrador: true solo si el perfil existe y su rol es administrador.
func EsAdministrador(perfil *uModel.PerfilModel) bool {
	if perfil == nil {
		return false
	}
	return perfil.Rol == constants.RolAdministrador
}

// PuedeEditarUsuario: el administrador puede editar a cualquiera;
// un usuario puede editar su propio perfil (campos no privilegiados).
func PuedeEditarUsuario(actorID uuid.UUID, actorPerfil *uModel.PerfilModel, targetID uuid.UUID) bool {
	if EsAdministrador(actorPerfil) {
		return true
	}
	return actorID == targetID
}

// PuedeCambiarRol: solo un administrador, y nunca sobre sí mismo
// (evita que el único admin se degrade y bloquee la administración).
func PuedeCambiarRol(actorID uuid.UUID, actorPerfil *uModel.PerfilModel, targetID uuid.UUID) bool {
	if !EsAdministrador(actorPerfil) {
		return false
	}
	return actorID != targetID
}

// PuedeCambiarActivo: solo un administrador, y nunca sobre su propia cuenta.
// La denegación es incondicional e independiente del rol (anti-lockout).
func PuedeCambiarActivo(actorID uuid.UUID, actorPerfil *uModel.PerfilModel, targetID uuid.UUID) bool {
	if actorID == targetID {
		return false
	}
	return EsAdministrador(actorPerfil)
}

// PuedeEliminarUsuario: misma regla que PuedeCambiarActivo — un actor jamás
// elimina su propia cuenta por la vía administrativa.
func PuedeEliminarUsuario(actorID uuid.UUID, actorPerfil *uModel.PerfilModel, targetID uuid.UUID) bool {
	if actorID == targetID {
		return false
	}
	return EsAdministrador(actorPerfil)
}
