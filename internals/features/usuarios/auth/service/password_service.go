package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "gestionemb_backend/internals/features/usuarios/auth/helper"
	authRepo "gestionemb_backend/internals/features/usuarios/auth/repository"
	helpers "gestionemb_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	usuarioID := usuarioIDFromLocals(c)
	if usuarioID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := authRepo.FindUsuarioByID(db, *usuarioID)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}

	if err := authHelper.CheckPasswordHash(usuario.Password, input.CurrentPassword); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Password actual incorrecto")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error al procesar el nuevo password")
	}

	if err := authRepo.UpdateUsuarioPassword(db, *usuarioID, newHash); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el password")
	}

	return helpers.Success(c, "Password actualizado correctamente", nil)
}
