package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	authRepo "gestionemb_backend/internals/features/usuarios/auth/repository"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	uDTO "gestionemb_backend/internals/features/usuarios/usuario/dto"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/helpers/storage"
	"gestionemb_backend/internals/mailer"
)

// PerfilController: la vía self-service. Solo toca campos no privilegiados;
// rol y activo jamás pasan por aquí.
type PerfilController struct {
	DB      *gorm.DB
	Mailer  *mailer.Mailer
	Storage *storage.Client
}

func NewPerfilController(db *gorm.DB, mail *mailer.Mailer, store *storage.Client) *PerfilController {
	return &PerfilController{DB: db, Mailer: mail, Storage: store}
}

// Me devuelve la cuenta + perfil del actor.
func (ctrl *PerfilController) Me(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := authRepo.FindUsuarioByID(ctrl.DB, *actorID)
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helpers.Success(c, "Perfil", uDTO.FromModels(usuario, usuario.Perfil))
}

// UpdateMe: actualización parcial de los campos propios no privilegiados.
func (ctrl *PerfilController) UpdateMe(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := authRepo.FindUsuarioByID(ctrl.DB, *actorID)
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	if usuario.Perfil == nil {
		// invariante roto: cuenta sin perfil
		return helpers.Error(c, fiber.StatusInternalServerError, "Perfil no encontrado")
	}

	var input uDTO.UpdatePerfilRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	input.ApplyToModels(usuario, usuario.Perfil)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(usuario).Error; err != nil {
			return err
		}
		return tx.Save(usuario.Perfil).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el perfil")
	}

	// best-effort, jamás abortan la transacción ya confirmada
	ctrl.Mailer.CuentaActualizada(usuario.Email, usuario.Perfil.Nombre)
	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadUsuario, usuario.ID.String(),
		"Edición de perfil propio", nil)

	return helpers.Success(c, "Perfil actualizado", uDTO.FromModels(usuario, usuario.Perfil))
}

// SubirFoto: procesa y guarda la foto de perfil (users/user_<id>.webp).
// El fallo al convertir la imagen es un error del request; el archivo viejo
// se pisa por convención de nombre, no hay limpieza pendiente.
func (ctrl *PerfilController) SubirFoto(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fh, err := c.FormFile("foto")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Falta el archivo 'foto'")
	}

	rel, err := ctrl.Storage.SaveFotoPerfil(*actorID, fh)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "No se pudo procesar la imagen")
	}

	if err := ctrl.DB.Table("perfiles").Where("usuario_id = ?", *actorID).
		Update("foto_perfil", rel).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la foto")
	}

	return helpers.Success(c, "Foto actualizada", fiber.Map{"foto_perfil": rel})
}
