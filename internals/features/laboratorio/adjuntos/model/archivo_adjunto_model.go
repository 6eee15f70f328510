package model

import (
	"time"

	"github.com/google/uuid"
)

// ArchivoAdjuntoModel liga un archivo físico a exactamente una entidad
// objetivo identificada por (tipo_entidad, id_entidad). Es una referencia
// débil — cruza varias tablas, el storage no la valida — así que la
// limpieza de huérfanos es responsabilidad del código que borra entidades.
type ArchivoAdjuntoModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	NombreOriginal string `gorm:"size:255;not null" json:"nombre_original"`
	Ruta           string `gorm:"size:500;not null" json:"ruta"`
	Tamano         int64  `gorm:"not null" json:"tamano"`
	TipoMime       string `gorm:"size:100" json:"tipo_mime"`

	TipoEntidad string    `gorm:"type:varchar(20);not null;index:idx_adjunto_entidad" json:"tipo_entidad"`
	IDEntidad   uuid.UUID `gorm:"type:uuid;not null;index:idx_adjunto_entidad" json:"id_entidad"`

	SubidoPorID *uuid.UUID `gorm:"type:uuid" json:"subido_por_id,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"fecha_subida"`
}

func (ArchivoAdjuntoModel) TableName() string {
	return "archivos_adjuntos"
}
