package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditoriaLogModel: registro append-only de acciones sensibles.
// Las filas jamás se actualizan ni se borran desde la aplicación;
// no existen endpoints de mutación para esta tabla.
type AuditoriaLogModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Nullable: si el usuario se elimina (hard delete), el registro queda
	// con usuario en null, nunca se pierde.
	UsuarioID *uuid.UUID `gorm:"type:uuid;index" json:"usuario_id,omitempty"`

	Accion    string `gorm:"type:varchar(20);not null;index" json:"accion"`
	Entidad   string `gorm:"type:varchar(30);not null;index" json:"entidad"`
	IDEntidad string `gorm:"type:varchar(64)" json:"id_entidad"`

	Descripcion string `gorm:"type:text" json:"descripcion"`
	IPAddress   string `gorm:"size:45" json:"ip_address"`
	UserAgent   string `gorm:"size:300" json:"user_agent"`

	DatosAdicionales datatypes.JSON `gorm:"type:jsonb" json:"datos_adicionales,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditoriaLogModel) TableName() string {
	return "auditoria_logs"
}
