package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	"gestionemb_backend/internals/mailer"
)

type AuthController struct {
	DB     *gorm.DB
	Mailer *mailer.Mailer
}

func NewAuthController(db *gorm.DB, mail *mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Mailer: mail}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctrl.DB, ctrl.Mailer, c)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctrl.DB, c)
}
