package service

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	auditoriaModel "gestionemb_backend/internals/features/auditoria/model"
	adjuntoModel "gestionemb_backend/internals/features/laboratorio/adjuntos/model"
	equipoModel "gestionemb_backend/internals/features/laboratorio/equipos/model"
	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
)

// La tabla de desvinculado se verifica contra el esquema real de los modelos:
// si una columna listada se renombra o desaparece, este test lo detecta antes
// de que un borrado duro deje referencias colgando en silencio.
func TestReferenciasUsuarioExistenEnElEsquema(t *testing.T) {
	modelos := map[string]interface{}{
		"auditoria_logs":           &auditoriaModel.AuditoriaLogModel{},
		"protocolos":               &protocoloModel.ProtocoloModel{},
		"organismos":               &organismoModel.OrganismoModel{},
		"equipos":                  &equipoModel.EquipoModel{},
		"historial_mantenimientos": &equipoModel.HistorialMantenimientoModel{},
		"archivos_adjuntos":        &adjuntoModel.ArchivoAdjuntoModel{},
	}

	cache := &sync.Map{}
	esquemas := make(map[string]*schema.Schema, len(modelos))
	for tabla, modelo := range modelos {
		s, err := schema.Parse(modelo, cache, schema.NamingStrategy{})
		require.NoError(t, err)
		require.Equal(t, tabla, s.Table)
		esquemas[tabla] = s
	}

	for _, ref := range referenciasUsuario {
		s, ok := esquemas[ref.Tabla]
		require.True(t, ok, "tabla %s sin modelo conocido", ref.Tabla)

		campo, ok := s.FieldsByDBName[ref.Columna]
		require.True(t, ok, "%s.%s no existe en el modelo", ref.Tabla, ref.Columna)
		// las referencias a usuarios son punteros: nullable por construcción
		assert.Equal(t, reflect.Ptr, campo.FieldType.Kind(),
			"%s.%s debe ser nullable para poder desvincularse", ref.Tabla, ref.Columna)
	}
}

// Toda columna *_id que por convención apunta a usuarios debe estar en la
// tabla de desvinculado; agregar un modelo con una referencia nueva exige
// listarla aquí y allá.
func TestReferenciasUsuarioCubrenLasConocidas(t *testing.T) {
	esperadas := map[referenciaUsuario]bool{
		{"auditoria_logs", "usuario_id"}:                  false,
		{"protocolos", "autor_id"}:                        false,
		{"protocolos", "validado_por_id"}:                 false,
		{"organismos", "creador_id"}:                      false,
		{"equipos", "responsable_id"}:                     false,
		{"historial_mantenimientos", "registrado_por_id"}: false,
		{"archivos_adjuntos", "subido_por_id"}:            false,
	}

	for _, ref := range referenciasUsuario {
		_, conocida := esperadas[ref]
		assert.True(t, conocida, "referencia inesperada %v", ref)
		esperadas[ref] = true
	}
	for ref, cubierta := range esperadas {
		assert.True(t, cubierta, "referencia %v sin desvinculado", ref)
	}
}
