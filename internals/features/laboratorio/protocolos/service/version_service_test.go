package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
)

func protocoloEn(estado string) *protocoloModel.ProtocoloModel {
	return &protocoloModel.ProtocoloModel{
		ID:            uuid.New(),
		Titulo:        "Fermentación de levaduras",
		Procedimiento: "Paso 1...",
		Estado:        estado,
		Version:       1,
	}
}

func TestValidarDesdeEnRevision(t *testing.T) {
	p := protocoloEn(protocoloModel.EstadoEnRevision)
	actor := uuid.New()
	ahora := time.Now()

	require.NoError(t, Validar(p, actor, ahora))
	assert.Equal(t, protocoloModel.EstadoValidado, p.Estado)
	require.NotNil(t, p.ValidadoPorID)
	assert.Equal(t, actor, *p.ValidadoPorID)
	require.NotNil(t, p.FechaValidacion)
	assert.Equal(t, ahora, *p.FechaValidacion)
}

func TestValidarDesdeOtrosEstadosFalla(t *testing.T) {
	for _, estado := range []string{
		protocoloModel.EstadoBorrador,
		protocoloModel.EstadoValidado,
		protocoloModel.EstadoObsoleto,
	} {
		p := protocoloEn(estado)
		err := Validar(p, uuid.New(), time.Now())

		assert.ErrorIs(t, err, ErrConflictoEstado)
		// sin mutación parcial
		assert.Equal(t, estado, p.Estado)
		assert.Nil(t, p.ValidadoPorID)
		assert.Nil(t, p.FechaValidacion)
	}
}

func TestEnviarRevision(t *testing.T) {
	p := protocoloEn(protocoloModel.EstadoBorrador)
	require.NoError(t, EnviarRevision(p))
	assert.Equal(t, protocoloModel.EstadoEnRevision, p.Estado)

	// validado nunca vuelve a revisión
	v := protocoloEn(protocoloModel.EstadoValidado)
	assert.ErrorIs(t, EnviarRevision(v), ErrConflictoEstado)
	assert.Equal(t, protocoloModel.EstadoValidado, v.Estado)
}

func TestMarcarObsoleto(t *testing.T) {
	// cualquier estado puede pasar a obsoleto
	for _, estado := range []string{
		protocoloModel.EstadoBorrador,
		protocoloModel.EstadoEnRevision,
		protocoloModel.EstadoValidado,
	} {
		p := protocoloEn(estado)
		require.NoError(t, MarcarObsoleto(p))
		assert.Equal(t, protocoloModel.EstadoObsoleto, p.Estado)
	}

	// repetir sobre un obsoleto es idempotente, no un conflicto
	o := protocoloEn(protocoloModel.EstadoObsoleto)
	require.NoError(t, MarcarObsoleto(o))
	assert.Equal(t, protocoloModel.EstadoObsoleto, o.Estado)
}

func TestNuevaVersionDesdeRaiz(t *testing.T) {
	origen := protocoloEn(protocoloModel.EstadoValidado)
	origen.Version = 3
	origen.Materiales = []string{"placa petri", "agar"}
	actor := uuid.New()

	nueva := NuevaVersion(origen, actor)

	assert.Equal(t, 4, nueva.Version)
	assert.Equal(t, protocoloModel.EstadoBorrador, nueva.Estado)
	require.NotNil(t, nueva.VersionPadreID)
	assert.Equal(t, origen.ID, *nueva.VersionPadreID)
	require.NotNil(t, nueva.AutorID)
	assert.Equal(t, actor, *nueva.AutorID)
	assert.Equal(t, origen.Titulo, nueva.Titulo)
	assert.Equal(t, origen.Procedimiento, nueva.Procedimiento)
	assert.Equal(t, []string{"placa petri", "agar"}, []string(nueva.Materiales))

	// la fila origen no se toca
	assert.Equal(t, protocoloModel.EstadoValidado, origen.Estado)
	assert.Equal(t, 3, origen.Version)
	assert.Nil(t, origen.VersionPadreID)
}

func TestNuevaVersionApuntaALaRaiz(t *testing.T) {
	// linaje estrella: versionar una hija apunta a la raíz, no a la hija
	raizID := uuid.New()
	hija := protocoloEn(protocoloModel.EstadoEnRevision)
	hija.Version = 2
	hija.VersionPadreID = &raizID

	nueva := NuevaVersion(hija, uuid.New())

	assert.Equal(t, 3, nueva.Version)
	require.NotNil(t, nueva.VersionPadreID)
	assert.Equal(t, raizID, *nueva.VersionPadreID)
}

func TestNuevaVersionNoCompareSlices(t *testing.T) {
	origen := protocoloEn(protocoloModel.EstadoBorrador)
	origen.Materiales = []string{"tubo"}

	nueva := NuevaVersion(origen, uuid.New())
	nueva.Materiales[0] = "matraz"

	// la copia es profunda: mutar la nueva no toca el origen
	assert.Equal(t, "tubo", origen.Materiales[0])
}
