package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
)

func TestCreateToModel(t *testing.T) {
	autorID := uuid.New()
	catID := uuid.New()

	r := CreateProtocoloRequest{
		Titulo:        "Fermentación en medio YPD",
		Procedimiento: "1. Preparar el medio...",
		Materiales:    []string{"YPD", "matraz"},
		CategoriaID:   catID,
	}
	m := r.ToModel(autorID)

	assert.Equal(t, protocoloModel.EstadoBorrador, m.Estado)
	assert.Equal(t, 1, m.Version)
	assert.Nil(t, m.VersionPadreID)
	assert.Equal(t, autorID, *m.AutorID)
	assert.Equal(t, catID, *m.CategoriaID)
	assert.Equal(t, pq.StringArray{"YPD", "matraz"}, m.Materiales)
}

func TestUpdateApplyToModelParcial(t *testing.T) {
	catID := uuid.New()
	desc := "protocolo base"
	m := protocoloModel.ProtocoloModel{
		Titulo:        "Original",
		Descripcion:   &desc,
		Procedimiento: "pasos",
		Materiales:    pq.StringArray{"a"},
		Estado:        protocoloModel.EstadoBorrador,
		CategoriaID:   &catID,
		Version:       2,
	}

	nuevoTitulo := "Editado"
	r := UpdateProtocoloRequest{Titulo: &nuevoTitulo}
	r.ApplyToModel(&m)

	assert.Equal(t, "Editado", m.Titulo)
	// lo no enviado no se toca — incluido estado y versión
	assert.Equal(t, "pasos", m.Procedimiento)
	assert.Equal(t, &desc, m.Descripcion)
	assert.Equal(t, pq.StringArray{"a"}, m.Materiales)
	assert.Equal(t, protocoloModel.EstadoBorrador, m.Estado)
	assert.Equal(t, 2, m.Version)
	assert.Equal(t, &catID, m.CategoriaID)

	// materiales vacío explícito sí reemplaza
	r = UpdateProtocoloRequest{Materiales: []string{}}
	r.ApplyToModel(&m)
	assert.Empty(t, m.Materiales)
}
