package model

import (
	"time"

	"github.com/google/uuid"

	"gestionemb_backend/internals/constants"
)

// PerfilModel es la extensión 1:1 del usuario: rol + datos de contacto.
type PerfilModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"usuario_id"`
	Rol       string    `gorm:"type:varchar(20);not null;default:'estudiante'" json:"rol" validate:"omitempty,oneof=administrador estudiante"`

	Nombre       string  `gorm:"size:100;not null" json:"nombre" validate:"required,min=2,max=100"`
	Apellidos    string  `gorm:"size:100" json:"apellidos"`
	Telefono     *string `gorm:"size:30" json:"telefono,omitempty"`
	Departamento *string `gorm:"size:100" json:"departamento,omitempty"`
	Cargo        *string `gorm:"size:100" json:"cargo,omitempty"`
	FotoPerfil   *string `gorm:"size:255" json:"foto_perfil,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PerfilModel) TableName() string {
	return "perfiles"
}

// SetDefaultValues asegura el rol default antes de validar: vacío o
// desconocido cae a estudiante.
func (p *PerfilModel) SetDefaultValues() {
	if !constants.EsRolValido(p.Rol) {
		p.Rol = constants.RolEstudiante
	}
}
