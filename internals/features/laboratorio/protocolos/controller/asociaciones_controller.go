package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	equipoModel "gestionemb_backend/internals/features/laboratorio/equipos/model"
	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
	protocoloDTO "gestionemb_backend/internals/features/laboratorio/protocolos/dto"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
)

// Asociaciones protocolo ↔ equipo / organismo. El par es único; repetir la
// asociación es un 409 de unicidad, no un error de validación.

func (ctrl *ProtocoloController) GetEquipos(c *fiber.Ctx) error {
	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	var filas []protocoloModel.ProtocoloEquipoModel
	if err := ctrl.DB.Where("protocolo_id = ?", protocolo.ID).
		Order("created_at ASC").Find(&filas).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando asociaciones")
	}
	return helpers.Success(c, "Equipos del protocolo", filas)
}

func (ctrl *ProtocoloController) GetOrganismos(c *fiber.Ctx) error {
	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	var filas []protocoloModel.ProtocoloOrganismoModel
	if err := ctrl.DB.Where("protocolo_id = ?", protocolo.ID).
		Order("created_at ASC").Find(&filas).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando asociaciones")
	}
	return helpers.Success(c, "Organismos del protocolo", filas)
}

func (ctrl *ProtocoloController) AsociarEquipo(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	var input protocoloDTO.AsociarEquipoRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	var count int64
	ctrl.DB.Model(&equipoModel.EquipoModel{}).Where("id = ?", input.EquipoID).Count(&count)
	if count == 0 {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", fiber.Map{
			"equipo_id": "el equipo no existe",
		})
	}

	fila := protocoloModel.ProtocoloEquipoModel{
		ProtocoloID: protocolo.ID,
		EquipoID:    input.EquipoID,
		Notas:       input.Notas,
	}
	if err := ctrl.DB.Create(&fila).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Asociación ya existe", fiber.Map{
				"equipo_id": "el equipo ya está asociado a este protocolo",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear la asociación")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadProtocolo, protocolo.ID.String(),
		"Asociación de equipo al protocolo "+protocolo.Titulo,
		fiber.Map{"equipo_id": input.EquipoID})

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Equipo asociado", fila)
}

func (ctrl *ProtocoloController) AsociarOrganismo(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	var input protocoloDTO.AsociarOrganismoRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	var count int64
	ctrl.DB.Model(&organismoModel.OrganismoModel{}).Where("id = ?", input.OrganismoID).Count(&count)
	if count == 0 {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", fiber.Map{
			"organismo_id": "el organismo no existe",
		})
	}

	fila := protocoloModel.ProtocoloOrganismoModel{
		ProtocoloID:  protocolo.ID,
		OrganismoID:  input.OrganismoID,
		TipoRelacion: input.TipoRelacion,
		Notas:        input.Notas,
	}
	if fila.TipoRelacion == "" {
		fila.TipoRelacion = "objeto"
	}
	if err := ctrl.DB.Create(&fila).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Asociación ya existe", fiber.Map{
				"organismo_id": "el organismo ya está asociado a este protocolo",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear la asociación")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadProtocolo, protocolo.ID.String(),
		"Asociación de organismo al protocolo "+protocolo.Titulo,
		fiber.Map{"organismo_id": input.OrganismoID})

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Organismo asociado", fila)
}

func (ctrl *ProtocoloController) DesasociarEquipo(c *fiber.Ctx) error {
	return ctrl.desasociar(c, "equipo_id", &protocoloModel.ProtocoloEquipoModel{})
}

func (ctrl *ProtocoloController) DesasociarOrganismo(c *fiber.Ctx) error {
	return ctrl.desasociar(c, "organismo_id", &protocoloModel.ProtocoloOrganismoModel{})
}

func (ctrl *ProtocoloController) desasociar(c *fiber.Ctx, columna string, modelo interface{}) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}
	objetivoID, err := uuid.Parse(c.Params("objetivo_id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	res := ctrl.DB.Where("protocolo_id = ? AND "+columna+" = ?", protocolo.ID, objetivoID).
		Delete(modelo)
	if res.Error != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la asociación")
	}
	if res.RowsAffected == 0 {
		return helpers.Error(c, fiber.StatusNotFound, "Asociación no encontrada")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadProtocolo, protocolo.ID.String(),
		"Eliminación de asociación del protocolo "+protocolo.Titulo,
		fiber.Map{columna: objetivoID})

	return helpers.Success(c, "Asociación eliminada", fiber.Map{"deleted_" + columna: objetivoID})
}
