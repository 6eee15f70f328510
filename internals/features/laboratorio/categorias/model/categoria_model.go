package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoriaModel agrupa protocolos, organismos y equipos.
// Su borrado NUNCA cascadea a los dueños: el controller deja sus
// categoria_id en null dentro de la transacción de borrado.
type CategoriaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nombre      string    `gorm:"size:100;not null" json:"nombre" validate:"required,min=2,max=100"`
	Descripcion *string   `gorm:"type:text" json:"descripcion,omitempty"`
	Tipo        string    `gorm:"type:varchar(20);not null" json:"tipo" validate:"required,oneof=protocolo organismo equipo"`
	Activo      bool      `gorm:"not null;default:true" json:"activo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (CategoriaModel) TableName() string {
	return "categorias"
}
