package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	authHelper "gestionemb_backend/internals/features/usuarios/auth/helper"
	authRepo "gestionemb_backend/internals/features/usuarios/auth/repository"
	uDTO "gestionemb_backend/internals/features/usuarios/usuario/dto"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/mailer"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

// Register crea la cuenta (rol estudiante por default) con su perfil, envía
// el correo de bienvenida (fire-and-forget) y audita el alta.
func Register(db *gorm.DB, mail *mailer.Mailer, c *fiber.Ctx) error {
	var input uDTO.CreateUsuarioRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	input.Normalize()
	// el registro público nunca elige rol ni estado
	input.Rol = constants.RolEstudiante
	input.Activo = nil

	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error al procesar el password")
	}

	usuario, perfil := input.ToModels()
	usuario.Password = hash

	if err := authRepo.CreateUsuarioConPerfil(db, usuario, perfil); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Usuario ya existe", fiber.Map{
				"user_name": "username o email ya registrado",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	// best-effort: ni el correo ni la auditoría bloquean el alta
	mail.BienvenidaUsuario(usuario.Email, perfil.Nombre)
	auditoriaService.RegistrarDesdeCtx(db, c, &usuario.ID,
		constants.AccionCrear, constants.EntidadUsuario, usuario.ID.String(),
		"Registro de usuario "+usuario.UserName, nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Usuario registrado",
		uDTO.FromModels(usuario, perfil))
}

/* ==========================
   LOGIN
========================== */

type loginRequest struct {
	Identidad  string `json:"identidad" validate:"required"` // username o email
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// Login autentica y emite el par de tokens. Una cuenta inactiva se rechaza
// ANTES de establecer sesión. Los intentos denegados (credenciales malas o
// cuenta inactiva) no escriben fila de auditoría: solo se audita el login
// que efectivamente ocurrió.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input loginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	usuario, err := authRepo.FindUsuarioByIdentidad(db, input.Identidad)
	if err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	if err := authHelper.CheckPasswordHash(usuario.Password, input.Password); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	if !usuario.Activo {
		return helpers.Error(c, fiber.StatusForbidden, "Tu cuenta está desactivada")
	}

	tokens, err := GenerateTokenPair(usuario, input.RememberMe)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo generar la sesión")
	}

	// cookie httpOnly además del body, para clientes browser
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(24 * time.Hour),
	})

	auditoriaService.RegistrarDesdeCtx(db, c, &usuario.ID,
		constants.AccionLogin, constants.EntidadUsuario, usuario.ID.String(),
		"Inicio de sesión de "+usuario.UserName, nil)

	return helpers.Success(c, "Login exitoso", fiber.Map{
		"tokens":  tokens,
		"usuario": uDTO.FromModels(usuario, usuario.Perfil),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	usuarioID := usuarioIDFromLocals(c)

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})

	if usuarioID != nil {
		auditoriaService.RegistrarDesdeCtx(db, c, usuarioID,
			constants.AccionLogout, constants.EntidadUsuario, usuarioID.String(),
			"Cierre de sesión", nil)
	}

	return helpers.Success(c, "Sesión cerrada", nil)
}

/* ==========================
   Helpers
========================== */

func usuarioIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

// UsuarioIDFromLocals expone el helper a otros controllers.
func UsuarioIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	return usuarioIDFromLocals(c)
}
