package constants

import "fmt"

// Roles del sistema (tabla perfil.rol)
const (
	RolAdministrador = "administrador"
	RolEstudiante    = "estudiante"
)

// Acciones de auditoría
const (
	AccionCrear    = "crear"
	AccionEditar   = "editar"
	AccionEliminar = "eliminar"
	AccionValidar  = "validar"
	AccionLogin    = "login"
	AccionLogout   = "logout"
)

// Plantilla de mensaje de error del gate de administradores
const ErrSoloAdministradores = "❌ Solo un administrador puede acceder a %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSoloAdministradores, feature)
}

// ==========================
// ✅ Grupos de roles
// ==========================
var (
	TodosLosRoles = []string{
		RolAdministrador,
		RolEstudiante,
	}

	SoloAdmin = []string{
		RolAdministrador,
	}
)

func EsRolValido(rol string) bool {
	for _, r := range TodosLosRoles {
		if r == rol {
			return true
		}
	}
	return false
}
