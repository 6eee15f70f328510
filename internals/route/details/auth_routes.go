package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gestionemb_backend/internals/features/usuarios/auth/controller"
	"gestionemb_backend/internals/mailer"
	middlewares "gestionemb_backend/internals/middlewares"
	authMw "gestionemb_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoints públicos de sesión. Login y registro llevan sus
// propios rate limiters, más estrictos que el global.
func AuthRoutes(r fiber.Router, db *gorm.DB, mail *mailer.Mailer) {
	ctrl := authController.NewAuthController(db, mail)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/logout", ctrl.Logout)

	// cambio de password: requiere sesión aunque viva bajo /auth
	r.Post("/change-password", authMw.AuthMiddleware(db), ctrl.ChangePassword)
}
