package model

import (
	"time"

	"github.com/google/uuid"
)

// ProtocoloEquipoModel asocia un protocolo con el equipamiento que usa.
type ProtocoloEquipoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProtocoloID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_protocolo_equipo" json:"protocolo_id"`
	EquipoID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_protocolo_equipo" json:"equipo_id"`
	Notas       *string   `gorm:"type:text" json:"notas,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"fecha_asociacion"`
}

func (ProtocoloEquipoModel) TableName() string {
	return "protocolo_equipos"
}

// ProtocoloOrganismoModel asocia un protocolo con un organismo.
type ProtocoloOrganismoModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProtocoloID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_protocolo_organismo" json:"protocolo_id"`
	OrganismoID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_protocolo_organismo" json:"organismo_id"`
	TipoRelacion string    `gorm:"type:varchar(10);not null;default:'objeto'" json:"tipo_relacion" validate:"omitempty,oneof=objeto insumo producto"`
	Notas        *string   `gorm:"type:text" json:"notas,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"fecha_asociacion"`
}

func (ProtocoloOrganismoModel) TableName() string {
	return "protocolo_organismos"
}
