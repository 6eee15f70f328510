package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	equipoModel "gestionemb_backend/internals/features/laboratorio/equipos/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
)

// Historial de mantenimiento: solo alta y listado. El historial es
// append-only; no existen endpoints de edición ni borrado de filas.

// GetMantenimientos lista el historial de un equipo, más reciente primero.
func (ctrl *EquipoController) GetMantenimientos(c *fiber.Ctx) error {
	equipo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Equipo no encontrado")
	}

	p := helpers.ParseFiber(c, "fecha", "desc", helpers.DefaultOpts)

	var total int64
	q := ctrl.DB.Model(&equipoModel.HistorialMantenimientoModel{}).
		Where("equipo_id = ?", equipo.ID)
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando historial")
	}

	var historial []equipoModel.HistorialMantenimientoModel
	if err := q.Order("fecha_mantenimiento DESC, created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&historial).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando historial")
	}

	return helpers.Success(c, "Historial de mantenimiento", fiber.Map{
		"items": historial,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// CrearMantenimiento registra un mantenimiento y sincroniza las fechas del
// equipo (último = fecha de la fila, próximo = el declarado, si viene) en la
// misma transacción.
func (ctrl *EquipoController) CrearMantenimiento(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	equipo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Equipo no encontrado")
	}

	var fila equipoModel.HistorialMantenimientoModel
	if err := c.BodyParser(&fila); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	fila.EquipoID = equipo.ID
	fila.RegistradoPorID = actorID

	if err := validate.Struct(&fila); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&fila).Error; err != nil {
			return err
		}
		cambios := map[string]interface{}{
			"fecha_ultimo_mantenimiento": fila.FechaMantenimiento,
		}
		if fila.ProximoMantenimiento != nil {
			cambios["fecha_proximo_mantenimiento"] = fila.ProximoMantenimiento
		}
		return tx.Model(equipo).Updates(cambios).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el mantenimiento")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadEquipo, equipo.ID.String(),
		"Mantenimiento "+fila.TipoMantenimiento+" del equipo "+equipo.Nombre,
		fiber.Map{"historial_id": fila.ID})

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Mantenimiento registrado", fila)
}
