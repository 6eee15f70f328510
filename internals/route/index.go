package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestionemb_backend/internals/configs"
	"gestionemb_backend/internals/helpers/storage"
	"gestionemb_backend/internals/mailer"
	authMw "gestionemb_backend/internals/middlewares/auth"
	details "gestionemb_backend/internals/route/details"
)

// SetupRoutes monta los tres grupos de la API:
//   /api/auth — público (rate limited)
//   /api/u    — requiere JWT
//   /api/a    — requiere JWT + rol administrador
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	mail := mailer.New(configs.App)
	store := storage.NewClient(configs.App.MediaRoot)

	api := app.Group("/api")

	details.AuthRoutes(api.Group("/auth"), db, mail)

	user := api.Group("/u", authMw.AuthMiddleware(db))
	details.UserRoutes(user, db, mail, store)

	admin := api.Group("/a", authMw.AuthMiddleware(db))
	details.AdminRoutes(admin, db, mail, store)
}
