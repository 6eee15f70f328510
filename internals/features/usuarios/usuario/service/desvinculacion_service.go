package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificacionModel "gestionemb_backend/internals/features/notificaciones/model"
)

// Las referencias a usuarios en el resto del esquema son débiles (columnas
// uuid sin FK declarada), igual que la referencia polimórfica de adjuntos.
// El desvinculado al borrar una cuenta es por tanto responsabilidad de la
// aplicación y vive aquí, en una tabla explícita: una columna que apunte a
// usuarios y no esté listada queda colgando.
type referenciaUsuario struct {
	Tabla   string
	Columna string
}

var referenciasUsuario = []referenciaUsuario{
	{"auditoria_logs", "usuario_id"},
	{"protocolos", "autor_id"},
	{"protocolos", "validado_por_id"},
	{"organismos", "creador_id"},
	{"equipos", "responsable_id"},
	{"historial_mantenimientos", "registrado_por_id"},
	{"archivos_adjuntos", "subido_por_id"},
}

// DesvincularUsuario deja en null toda columna que apunte al usuario y borra
// su bandeja de notificaciones (la bandeja es personal, no sobrevive a la
// cuenta). Debe correr dentro de la misma transacción que el borrado duro.
func DesvincularUsuario(tx *gorm.DB, usuarioID uuid.UUID) error {
	for _, ref := range referenciasUsuario {
		if err := tx.Table(ref.Tabla).
			Where(ref.Columna+" = ?", usuarioID).
			Update(ref.Columna, nil).Error; err != nil {
			return err
		}
	}
	return tx.Where("usuario_id = ?", usuarioID).
		Delete(&notificacionModel.NotificacionModel{}).Error
}
