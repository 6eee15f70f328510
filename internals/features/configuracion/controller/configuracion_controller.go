package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	configuracionModel "gestionemb_backend/internals/features/configuracion/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
)

var validate = validator.New()

// Panel de configuración (admin). Las claves se siembran/crean por admin;
// solo las marcadas modificable_usuario aceptan cambio de valor vía API.
type ConfiguracionController struct {
	DB *gorm.DB
}

func NewConfiguracionController(db *gorm.DB) *ConfiguracionController {
	return &ConfiguracionController{DB: db}
}

func (ctrl *ConfiguracionController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&configuracionModel.ConfiguracionModel{})
	if cat := c.Query("categoria"); cat != "" {
		q = q.Where("categoria = ?", cat)
	}

	var configuraciones []configuracionModel.ConfiguracionModel
	if err := q.Order("categoria ASC, clave ASC").Find(&configuraciones).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando configuración")
	}
	return helpers.Success(c, "Configuración", configuraciones)
}

func (ctrl *ConfiguracionController) Create(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)

	var configuracion configuracionModel.ConfiguracionModel
	if err := c.BodyParser(&configuracion); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	configuracion.ID = uuid.Nil
	if configuracion.TipoDato == "" {
		configuracion.TipoDato = "string"
	}

	if err := validate.Struct(&configuracion); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.DB.Create(&configuracion).Error; err != nil {
		return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Clave ya existe", fiber.Map{
			"clave": "ya existe una configuración con esa clave",
		})
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadConfiguracion, configuracion.ID.String(),
		"Alta de configuración "+configuracion.Clave, nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Configuración creada", configuracion)
}

// UpdateValor cambia el valor de una clave modificable. Las claves no
// modificables son de solo lectura por API sin importar el rol.
func (ctrl *ConfiguracionController) UpdateValor(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)

	clave := c.Params("clave")
	var configuracion configuracionModel.ConfiguracionModel
	if err := ctrl.DB.First(&configuracion, "clave = ?", clave).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Configuración no encontrada")
	}

	if !configuracion.ModificableUsuario {
		return helpers.Error(c, fiber.StatusForbidden, "Esta clave no es modificable")
	}

	var input struct {
		Valor *string `json:"valor" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	valorAnterior := ""
	if configuracion.Valor != nil {
		valorAnterior = *configuracion.Valor
	}

	if err := ctrl.DB.Model(&configuracion).Update("valor", input.Valor).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la configuración")
	}
	configuracion.Valor = input.Valor

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadConfiguracion, configuracion.ID.String(),
		"Cambio de configuración "+clave,
		fiber.Map{"anterior": valorAnterior, "nuevo": input.Valor})

	return helpers.Success(c, "Configuración actualizada", configuracion)
}
