package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de mantenimiento
const (
	MantenimientoPreventivo  = "preventivo"
	MantenimientoCorrectivo  = "correctivo"
	MantenimientoCalibracion = "calibracion"
)

// HistorialMantenimientoModel: historial append-only de un equipo.
// Una fila jamás se muta después de creada; las correcciones entran
// como filas correctivas nuevas. No hay endpoints de update/delete.
type HistorialMantenimientoModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EquipoID uuid.UUID `gorm:"type:uuid;not null;index" json:"equipo_id"`

	TipoMantenimiento    string     `gorm:"type:varchar(15);not null" json:"tipo_mantenimiento" validate:"required,oneof=preventivo correctivo calibracion"`
	FechaMantenimiento   time.Time  `gorm:"type:date;not null" json:"fecha_mantenimiento" validate:"required"`
	Descripcion          string     `gorm:"type:text;not null" json:"descripcion" validate:"required"`
	RealizadoPor         *string    `gorm:"size:255" json:"realizado_por,omitempty"`
	Costo                *float64   `gorm:"type:decimal(10,2)" json:"costo,omitempty"`
	Observaciones        *string    `gorm:"type:text" json:"observaciones,omitempty"`
	ProximoMantenimiento *time.Time `gorm:"type:date" json:"proximo_mantenimiento,omitempty"`

	RegistradoPorID *uuid.UUID `gorm:"type:uuid" json:"registrado_por_id,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (HistorialMantenimientoModel) TableName() string {
	return "historial_mantenimientos"
}
