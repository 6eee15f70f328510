package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEsRolValido(t *testing.T) {
	for _, rol := range TodosLosRoles {
		assert.True(t, EsRolValido(rol), rol)
	}

	assert.False(t, EsRolValido(""))
	assert.False(t, EsRolValido("superadmin"))
	assert.False(t, EsRolValido("Administrador")) // sensible a mayúsculas
}

func TestRoleErrorAdmin(t *testing.T) {
	msg := RoleErrorAdmin("el panel de administración")
	assert.Contains(t, msg, "administrador")
	assert.Contains(t, msg, "el panel de administración")
}
