package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	authHelper "gestionemb_backend/internals/features/usuarios/auth/helper"
	authRepo "gestionemb_backend/internals/features/usuarios/auth/repository"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	uDTO "gestionemb_backend/internals/features/usuarios/usuario/dto"
	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
	"gestionemb_backend/internals/features/usuarios/usuario/policy"
	usuarioService "gestionemb_backend/internals/features/usuarios/usuario/service"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/mailer"
)

var validate = validator.New()

// UsuarioAdminController: gestión de cuentas por administradores.
// El gate de rol vive en el route group (/api/a); aquí se aplican además
// las reglas puras de policy que dependen del objetivo (anti-lockout).
type UsuarioAdminController struct {
	DB     *gorm.DB
	Mailer *mailer.Mailer
}

func NewUsuarioAdminController(db *gorm.DB, mail *mailer.Mailer) *UsuarioAdminController {
	return &UsuarioAdminController{DB: db, Mailer: mail}
}

var ordenUsuarios = map[string]string{
	"fecha":     "created_at",
	"user_name": "user_name",
	"email":     "email",
}

func (ctrl *UsuarioAdminController) GetAll(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "fecha", "desc", helpers.AdminOpts)

	q := ctrl.DB.Model(&uModel.UsuarioModel{})
	if activo := c.Query("activo"); activo == "true" || activo == "false" {
		q = q.Where("activo = ?", activo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando usuarios")
	}

	var usuarios []uModel.UsuarioModel
	if err := q.Preload("Perfil").
		Order(p.SafeOrderClause(ordenUsuarios, "fecha")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&usuarios).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando usuarios")
	}

	return helpers.Success(c, "Usuarios", fiber.Map{
		"items": uDTO.FromModelList(usuarios),
		"meta":  helpers.BuildMeta(total, p),
	})
}

func (ctrl *UsuarioAdminController) GetByID(c *fiber.Ctx) error {
	usuario, err := ctrl.buscarUsuario(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helpers.Success(c, "Usuario", uDTO.FromModels(usuario, usuario.Perfil))
}

// Create: alta por admin, puede elegir rol y estado inicial.
func (ctrl *UsuarioAdminController) Create(c *fiber.Ctx) error {
	var input uDTO.CreateUsuarioRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error al procesar el password")
	}

	usuario, perfil := input.ToModels()
	usuario.Password = hash

	if err := authRepo.CreateUsuarioConPerfil(ctrl.DB, usuario, perfil); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Usuario ya existe", fiber.Map{
				"user_name": "username o email ya registrado",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	ctrl.Mailer.BienvenidaUsuario(usuario.Email, perfil.Nombre)
	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, authService.UsuarioIDFromLocals(c),
		constants.AccionCrear, constants.EntidadUsuario, usuario.ID.String(),
		"Alta de usuario "+usuario.UserName+" por administrador", nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Usuario creado",
		uDTO.FromModels(usuario, perfil))
}

// CambiarRol: solo admin y nunca sobre sí mismo.
func (ctrl *UsuarioAdminController) CambiarRol(c *fiber.Ctx) error {
	actorID, actorPerfil, err := ctrl.actor(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := ctrl.buscarUsuario(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	if !policy.PuedeCambiarRol(*actorID, actorPerfil, usuario.ID) {
		// denegado antes de mutar; sin fila de auditoría (no ocurrió acción)
		return helpers.Error(c, fiber.StatusForbidden, "No puedes cambiar tu propio rol")
	}

	var input uDTO.CambiarRolRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	rolAnterior := ""
	if usuario.Perfil != nil {
		rolAnterior = usuario.Perfil.Rol
	}

	if err := ctrl.DB.Model(&uModel.PerfilModel{}).
		Where("usuario_id = ?", usuario.ID).
		Update("rol", input.Rol).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar el rol")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadUsuario, usuario.ID.String(),
		fmt.Sprintf("Cambio de rol de %s: %s → %s", usuario.UserName, rolAnterior, input.Rol), nil)

	return helpers.Success(c, "Rol actualizado", fiber.Map{"rol": input.Rol})
}

// ToggleActivo: activa/desactiva una cuenta. Un actor jamás se desactiva
// a sí mismo por esta vía (anti-lockout), sin importar su rol.
func (ctrl *UsuarioAdminController) ToggleActivo(c *fiber.Ctx) error {
	actorID, actorPerfil, err := ctrl.actor(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := ctrl.buscarUsuario(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	if !policy.PuedeCambiarActivo(*actorID, actorPerfil, usuario.ID) {
		return helpers.Error(c, fiber.StatusForbidden, "No puedes desactivar tu propia cuenta")
	}

	nuevoEstado := !usuario.Activo
	if err := ctrl.DB.Model(usuario).Update("activo", nuevoEstado).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar el estado")
	}

	accion := "Desactivación"
	if nuevoEstado {
		accion = "Activación"
	}
	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadUsuario, usuario.ID.String(),
		accion+" de cuenta "+usuario.UserName, nil)

	return helpers.Success(c, "Estado actualizado", fiber.Map{"activo": nuevoEstado})
}

// Delete: borrado duro. Las referencias al usuario (auditoría, protocolos,
// organismos, equipos, adjuntos) se dejan en null en la misma transacción;
// la fila referenciada sobrevive con autor desconocido. Preferir ToggleActivo
// salvo limpieza real.
func (ctrl *UsuarioAdminController) Delete(c *fiber.Ctx) error {
	actorID, actorPerfil, err := ctrl.actor(c)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := ctrl.buscarUsuario(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	if !policy.PuedeEliminarUsuario(*actorID, actorPerfil, usuario.ID) {
		return helpers.Error(c, fiber.StatusForbidden, "No puedes eliminar tu propia cuenta")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := usuarioService.DesvincularUsuario(tx, usuario.ID); err != nil {
			return err
		}
		if err := tx.Where("usuario_id = ?", usuario.ID).Delete(&uModel.PerfilModel{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(usuario).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el usuario")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEliminar, constants.EntidadUsuario, usuario.ID.String(),
		"Eliminación de usuario "+usuario.UserName, nil)

	return helpers.Success(c, "Usuario eliminado", fiber.Map{"deleted_id": usuario.ID})
}

/* ======== helpers ======== */

func (ctrl *UsuarioAdminController) buscarUsuario(id string) (*uModel.UsuarioModel, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return authRepo.FindUsuarioByID(ctrl.DB, uid)
}

// actor devuelve id + perfil del actor autenticado.
func (ctrl *UsuarioAdminController) actor(c *fiber.Ctx) (*uuid.UUID, *uModel.PerfilModel, error) {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return nil, nil, errors.New("sin actor")
	}
	// perfil ausente no es fatal: policy lo trata como no-admin
	perfil, err := authRepo.FindPerfilByUsuarioID(ctrl.DB, *actorID)
	if err != nil {
		perfil = nil
	}
	return actorID, perfil, nil
}
