package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificacionModel "gestionemb_backend/internals/features/notificaciones/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
)

// Bandeja de notificaciones del usuario en sesión. Nadie lee la bandeja
// de otro: el usuario_id sale siempre del token, nunca de la URL.
type NotificacionController struct {
	DB *gorm.DB
}

func NewNotificacionController(db *gorm.DB) *NotificacionController {
	return &NotificacionController{DB: db}
}

func (ctrl *NotificacionController) GetAll(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helpers.ParseFiber(c, "fecha", "desc", helpers.DefaultOpts)

	q := ctrl.DB.Model(&notificacionModel.NotificacionModel{}).
		Where("usuario_id = ?", *actorID)
	if c.Query("no_leidas") == "true" {
		q = q.Where("leida = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando notificaciones")
	}

	var notificaciones []notificacionModel.NotificacionModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&notificaciones).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando notificaciones")
	}

	return helpers.Success(c, "Notificaciones", fiber.Map{
		"items": notificaciones,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// MarcarLeida: idempotente hacia el cliente; fecha_lectura solo se fija la
// primera vez.
func (ctrl *NotificacionController) MarcarLeida(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	nid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	var notificacion notificacionModel.NotificacionModel
	if err := ctrl.DB.First(&notificacion, "id = ? AND usuario_id = ?", nid, *actorID).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Notificación no encontrada")
	}

	if notificacion.MarcarLeida(time.Now()) {
		if err := ctrl.DB.Save(&notificacion).Error; err != nil {
			return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo marcar la notificación")
		}
	}

	return helpers.Success(c, "Notificación leída", notificacion)
}

func (ctrl *NotificacionController) MarcarTodasLeidas(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.Model(&notificacionModel.NotificacionModel{}).
		Where("usuario_id = ? AND leida = false", *actorID).
		Updates(map[string]interface{}{
			"leida":         true,
			"fecha_lectura": time.Now(),
		})
	if res.Error != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudieron marcar las notificaciones")
	}

	return helpers.Success(c, "Notificaciones leídas", fiber.Map{"marcadas": res.RowsAffected})
}
