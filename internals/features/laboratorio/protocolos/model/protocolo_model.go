package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Estados del protocolo. La máquina avanza solo hacia adelante:
// borrador → en_revision → validado; cualquier estado puede pasar a
// obsoleto, pero validado nunca vuelve a en_revision.
const (
	EstadoBorrador   = "borrador"
	EstadoEnRevision = "en_revision"
	EstadoValidado   = "validado"
	EstadoObsoleto   = "obsoleto"
)

// ProtocoloModel: protocolo de laboratorio versionado.
type ProtocoloModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Titulo        string         `gorm:"size:100;not null" json:"titulo" validate:"required,min=3,max=100"`
	Descripcion   *string        `gorm:"type:text" json:"descripcion,omitempty"`
	Procedimiento string         `gorm:"type:text;not null" json:"procedimiento" validate:"required"`
	Materiales    pq.StringArray `gorm:"type:text[]" json:"materiales,omitempty"`
	Referencias   pq.StringArray `gorm:"type:text[]" json:"referencias,omitempty"`

	Estado string `gorm:"type:varchar(15);not null;default:'borrador';index" json:"estado"`

	// Referencias débiles (sin FK): borrar la categoría o el autor no
	// arrastra al protocolo; quien borra deja estas columnas en null.
	AutorID     *uuid.UUID `gorm:"type:uuid" json:"autor_id,omitempty"`
	CategoriaID *uuid.UUID `gorm:"type:uuid" json:"categoria_id,omitempty"`

	// Versionado: el linaje es una estrella, no una lista enlazada.
	// VersionPadreID apunta siempre a la raíz (primera versión creada).
	Version        int        `gorm:"not null;default:1" json:"version"`
	VersionPadreID *uuid.UUID `gorm:"type:uuid;index" json:"version_padre_id,omitempty"`

	ValidadoPorID   *uuid.UUID `gorm:"type:uuid" json:"validado_por_id,omitempty"`
	FechaValidacion *time.Time `json:"fecha_validacion,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (ProtocoloModel) TableName() string {
	return "protocolos"
}
