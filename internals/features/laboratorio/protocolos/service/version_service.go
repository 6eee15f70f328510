// Package service implementa la máquina de estados y el versionado de
// protocolos. Las transiciones son puras sobre el modelo; la persistencia
// queda en el controller.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
)

// ErrConflictoEstado marca una transición ilegal de la máquina de estados.
// Se reporta distinto de un error de validación (409, no 400).
var ErrConflictoEstado = errors.New("conflicto de estado")

// Validar aplica la transición en_revision → validado sobre el modelo.
// Desde cualquier otro estado falla con ErrConflictoEstado sin mutar nada.
func Validar(p *protocoloModel.ProtocoloModel, actorID uuid.UUID, ahora time.Time) error {
	if p.Estado != protocoloModel.EstadoEnRevision {
		return fmt.Errorf("%w: no se puede validar un protocolo en estado %q, debe estar en revisión",
			ErrConflictoEstado, p.Estado)
	}
	p.Estado = protocoloModel.EstadoValidado
	p.ValidadoPorID = &actorID
	p.FechaValidacion = &ahora
	return nil
}

// EnviarRevision: borrador → en_revision.
func EnviarRevision(p *protocoloModel.ProtocoloModel) error {
	if p.Estado != protocoloModel.EstadoBorrador {
		return fmt.Errorf("%w: solo un borrador puede enviarse a revisión (estado actual %q)",
			ErrConflictoEstado, p.Estado)
	}
	p.Estado = protocoloModel.EstadoEnRevision
	return nil
}

// MarcarObsoleto: legal desde cualquier estado, incluido obsoleto
// (idempotente: repetir la llamada no es un conflicto).
func MarcarObsoleto(p *protocoloModel.ProtocoloModel) error {
	p.Estado = protocoloModel.EstadoObsoleto
	return nil
}

// NuevaVersion crea un nuevo borrador copiando el contenido del origen.
// Siempre es legal, desde cualquier estado, y NO muta la fila origen.
// El linaje es una estrella: version_padre apunta a la raíz del linaje
// (el padre del origen si existe, o el propio origen si él es la raíz).
func NuevaVersion(origen *protocoloModel.ProtocoloModel, actorID uuid.UUID) *protocoloModel.ProtocoloModel {
	raiz := origen.ID
	if origen.VersionPadreID != nil {
		raiz = *origen.VersionPadreID
	}

	nueva := &protocoloModel.ProtocoloModel{
		Titulo:        origen.Titulo,
		Descripcion:   origen.Descripcion,
		Procedimiento: origen.Procedimiento,
		Materiales:    append(origen.Materiales[:0:0], origen.Materiales...),
		Referencias:   append(origen.Referencias[:0:0], origen.Referencias...),

		Estado:         protocoloModel.EstadoBorrador,
		AutorID:        &actorID,
		CategoriaID:    origen.CategoriaID,
		Version:        origen.Version + 1,
		VersionPadreID: &raiz,
	}
	return nueva
}
