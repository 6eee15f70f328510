package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateProtocoloRequest: el autor sale del actor autenticado, no del body.
// La categoría es obligatoria en alta/edición aunque la columna sea nullable
// (solo el borrado de la categoría la deja en null).
type CreateProtocoloRequest struct {
	Titulo        string    `json:"titulo" validate:"required,min=3,max=100"`
	Descripcion   *string   `json:"descripcion,omitempty"`
	Procedimiento string    `json:"procedimiento" validate:"required"`
	Materiales    []string  `json:"materiales,omitempty"`
	Referencias   []string  `json:"referencias,omitempty"`
	CategoriaID   uuid.UUID `json:"categoria_id" validate:"required"`
}

func (r *CreateProtocoloRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Procedimiento = strings.TrimSpace(r.Procedimiento)
}

func (r *CreateProtocoloRequest) ToModel(autorID uuid.UUID) *protocoloModel.ProtocoloModel {
	catID := r.CategoriaID
	return &protocoloModel.ProtocoloModel{
		Titulo:        r.Titulo,
		Descripcion:   r.Descripcion,
		Procedimiento: r.Procedimiento,
		Materiales:    pq.StringArray(r.Materiales),
		Referencias:   pq.StringArray(r.Referencias),
		Estado:        protocoloModel.EstadoBorrador,
		AutorID:       &autorID,
		CategoriaID:   &catID,
		Version:       1,
	}
}

// UpdateProtocoloRequest: parcial; el estado NO se toca por aquí, solo vía
// las transiciones explícitas (enviar-revision / validar / obsoleto).
type UpdateProtocoloRequest struct {
	Titulo        *string    `json:"titulo,omitempty" validate:"omitempty,min=3,max=100"`
	Descripcion   *string    `json:"descripcion,omitempty"`
	Procedimiento *string    `json:"procedimiento,omitempty" validate:"omitempty,min=1"`
	Materiales    []string   `json:"materiales,omitempty"`
	Referencias   []string   `json:"referencias,omitempty"`
	CategoriaID   *uuid.UUID `json:"categoria_id,omitempty"`
}

func (r *UpdateProtocoloRequest) Normalize() {
	if r.Titulo != nil {
		v := strings.TrimSpace(*r.Titulo)
		r.Titulo = &v
	}
	if r.Procedimiento != nil {
		v := strings.TrimSpace(*r.Procedimiento)
		r.Procedimiento = &v
	}
}

func (r *UpdateProtocoloRequest) ApplyToModel(m *protocoloModel.ProtocoloModel) {
	if r.Titulo != nil {
		m.Titulo = *r.Titulo
	}
	if r.Descripcion != nil {
		m.Descripcion = r.Descripcion
	}
	if r.Procedimiento != nil {
		m.Procedimiento = *r.Procedimiento
	}
	if r.Materiales != nil {
		m.Materiales = pq.StringArray(r.Materiales)
	}
	if r.Referencias != nil {
		m.Referencias = pq.StringArray(r.Referencias)
	}
	if r.CategoriaID != nil {
		m.CategoriaID = r.CategoriaID
	}
}

// AsociarEquipoRequest / AsociarOrganismoRequest
type AsociarEquipoRequest struct {
	EquipoID uuid.UUID `json:"equipo_id" validate:"required"`
	Notas    *string   `json:"notas,omitempty"`
}

type AsociarOrganismoRequest struct {
	OrganismoID  uuid.UUID `json:"organismo_id" validate:"required"`
	TipoRelacion string    `json:"tipo_relacion" validate:"omitempty,oneof=objeto insumo producto"`
	Notas        *string   `json:"notas,omitempty"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type ProtocoloResponse struct {
	ID              uuid.UUID  `json:"id"`
	Titulo          string     `json:"titulo"`
	Descripcion     *string    `json:"descripcion,omitempty"`
	Procedimiento   string     `json:"procedimiento"`
	Materiales      []string   `json:"materiales,omitempty"`
	Referencias     []string   `json:"referencias,omitempty"`
	Estado          string     `json:"estado"`
	AutorID         *uuid.UUID `json:"autor_id,omitempty"`
	CategoriaID     *uuid.UUID `json:"categoria_id,omitempty"`
	Version         int        `json:"version"`
	VersionPadreID  *uuid.UUID `json:"version_padre_id,omitempty"`
	ValidadoPorID   *uuid.UUID `json:"validado_por_id,omitempty"`
	FechaValidacion *time.Time `json:"fecha_validacion,omitempty"`
	CreatedAt       time.Time  `json:"fecha_creacion"`
	UpdatedAt       time.Time  `json:"fecha_actualizacion"`
}

func FromModel(m *protocoloModel.ProtocoloModel) *ProtocoloResponse {
	if m == nil {
		return nil
	}
	return &ProtocoloResponse{
		ID:              m.ID,
		Titulo:          m.Titulo,
		Descripcion:     m.Descripcion,
		Procedimiento:   m.Procedimiento,
		Materiales:      []string(m.Materiales),
		Referencias:     []string(m.Referencias),
		Estado:          m.Estado,
		AutorID:         m.AutorID,
		CategoriaID:     m.CategoriaID,
		Version:         m.Version,
		VersionPadreID:  m.VersionPadreID,
		ValidadoPorID:   m.ValidadoPorID,
		FechaValidacion: m.FechaValidacion,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromModelList(list []protocoloModel.ProtocoloModel) []ProtocoloResponse {
	out := make([]ProtocoloResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
