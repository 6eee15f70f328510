package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificacionModel: bandeja de entrada por usuario.
// fecha_lectura se fija exactamente una vez, en la primera lectura.
type NotificacionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index" json:"usuario_id"`

	Titulo  string         `gorm:"size:255;not null" json:"titulo"`
	Mensaje string         `gorm:"type:text;not null" json:"mensaje"`
	Datos   datatypes.JSON `gorm:"type:jsonb" json:"datos,omitempty"`

	Leida        bool       `gorm:"not null;default:false" json:"leida"`
	FechaLectura *time.Time `json:"fecha_lectura,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (NotificacionModel) TableName() string {
	return "notificaciones"
}

// MarcarLeida fija leida y fecha_lectura solo la primera vez.
// Devuelve true si la llamada produjo un cambio.
func (n *NotificacionModel) MarcarLeida(ahora time.Time) bool {
	if n.Leida {
		return false
	}
	n.Leida = true
	n.FechaLectura = &ahora
	return true
}
