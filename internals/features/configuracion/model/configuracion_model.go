package model

import (
	"time"

	"github.com/google/uuid"
)

// ConfiguracionModel: ajustes clave/valor editables desde el panel admin.
type ConfiguracionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Clave       string    `gorm:"size:100;uniqueIndex;not null" json:"clave" validate:"required,max=100"`
	Valor       *string   `gorm:"type:text" json:"valor,omitempty"`
	Descripcion *string   `gorm:"type:text" json:"descripcion,omitempty"`
	TipoDato    string    `gorm:"type:varchar(10);not null;default:'string'" json:"tipo_dato" validate:"omitempty,oneof=string int bool json"`
	Categoria   string    `gorm:"size:50" json:"categoria"`

	// Solo las claves marcadas como modificables aceptan updates vía API.
	ModificableUsuario bool `gorm:"not null;default:false" json:"modificable_usuario"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (ConfiguracionModel) TableName() string {
	return "configuraciones"
}
