package service

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notificacionModel "gestionemb_backend/internals/features/notificaciones/model"
)

// Notificar deja una notificación en la bandeja del usuario. Es best-effort,
// igual que el correo: un fallo se loguea y no aborta la acción que la
// disparó.
func Notificar(db *gorm.DB, usuarioID uuid.UUID, titulo, mensaje string, datos fiber.Map) {
	var adicionales datatypes.JSON
	if datos != nil {
		if raw, err := sonic.Marshal(datos); err == nil {
			adicionales = datatypes.JSON(raw)
		}
	}

	n := notificacionModel.NotificacionModel{
		UsuarioID: usuarioID,
		Titulo:    titulo,
		Mensaje:   mensaje,
		Datos:     adicionales,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] creando notificación para %s: %v", usuarioID, err)
	}
}
