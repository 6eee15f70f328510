package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de un equipo
const (
	EstadoDisponible    = "disponible"
	EstadoEnUso         = "en_uso"
	EstadoMantenimiento = "mantenimiento"
	EstadoFueraServicio = "fuera_servicio"
)

// Ventana para "necesita mantenimiento pronto"
const DiasAvisoMantenimiento = 7

// EquipoModel: equipamiento de laboratorio con fechas de mantenimiento.
type EquipoModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Nombre                   string  `gorm:"size:255;not null" json:"nombre" validate:"required,min=2,max=255"`
	Modelo                   *string `gorm:"size:100" json:"modelo,omitempty"`
	NumeroSerie              *string `gorm:"size:100;uniqueIndex" json:"numero_serie,omitempty"`
	Marca                    *string `gorm:"size:100" json:"marca,omitempty"`
	EspecificacionesTecnicas *string `gorm:"type:text" json:"especificaciones_tecnicas,omitempty"`
	Ubicacion                *string `gorm:"size:255" json:"ubicacion,omitempty"`
	Estado                   string  `gorm:"type:varchar(20);not null;default:'disponible'" json:"estado" validate:"omitempty,oneof=disponible en_uso mantenimiento fuera_servicio"`

	FechaAdquisicion          *time.Time `gorm:"type:date" json:"fecha_adquisicion,omitempty"`
	FechaUltimoMantenimiento  *time.Time `gorm:"type:date" json:"fecha_ultimo_mantenimiento,omitempty"`
	FechaProximoMantenimiento *time.Time `gorm:"type:date" json:"fecha_proximo_mantenimiento,omitempty"`

	ResponsableID *uuid.UUID `gorm:"type:uuid" json:"responsable_id,omitempty"`
	CategoriaID   *uuid.UUID `gorm:"type:uuid" json:"categoria_id,omitempty"`

	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (EquipoModel) TableName() string {
	return "equipos"
}

// NecesitaMantenimientoPronto: próximo mantenimiento a 7 días o menos
// (incluye fechas ya vencidas).
func (e *EquipoModel) NecesitaMantenimientoPronto(hoy time.Time) bool {
	if e.FechaProximoMantenimiento == nil {
		return false
	}
	limite := hoy.AddDate(0, 0, DiasAvisoMantenimiento)
	return !e.FechaProximoMantenimiento.After(limite)
}
