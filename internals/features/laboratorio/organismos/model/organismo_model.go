package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de organismo soportados
const (
	TipoActinobacteria   = "actinobacteria"
	TipoLevadura         = "levadura"
	TipoHongoFilamentoso = "hongo_filamentoso"
)

// OrganismoModel: cepas de la colección EMB.
// (nombre_cientifico, cepa) es único; codigo es único global y lo asigna
// el generador (EMB-<PFX>-NNN), nunca el cliente.
type OrganismoModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	NombreCientifico string `gorm:"size:255;not null;uniqueIndex:idx_organismo_nombre_cepa" json:"nombre_cientifico" validate:"required,min=2,max=255"`
	Cepa             string `gorm:"size:100;uniqueIndex:idx_organismo_nombre_cepa" json:"cepa"`
	Codigo           string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Tipo             string `gorm:"type:varchar(20);not null;index" json:"tipo" validate:"required,oneof=actinobacteria levadura hongo_filamentoso"`

	Origen                      *string  `gorm:"size:255" json:"origen,omitempty"`
	CaracteristicasMorfologicas *string  `gorm:"type:text" json:"caracteristicas_morfologicas,omitempty"`
	CondicionesCultivo          *string  `gorm:"type:text" json:"condiciones_cultivo,omitempty"`
	TemperaturaOptima           *float64 `gorm:"type:decimal(4,2)" json:"temperatura_optima,omitempty"`
	PHOptimo                    *float64 `gorm:"type:decimal(3,2)" json:"ph_optimo,omitempty"`

	CreadorID   *uuid.UUID `gorm:"type:uuid" json:"creador_id,omitempty"`
	CategoriaID *uuid.UUID `gorm:"type:uuid" json:"categoria_id,omitempty"`

	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (OrganismoModel) TableName() string {
	return "organismos"
}
