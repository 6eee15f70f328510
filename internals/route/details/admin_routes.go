package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaController "gestionemb_backend/internals/features/auditoria/controller"
	configuracionController "gestionemb_backend/internals/features/configuracion/controller"
	adjuntoController "gestionemb_backend/internals/features/laboratorio/adjuntos/controller"
	categoriaController "gestionemb_backend/internals/features/laboratorio/categorias/controller"
	equipoController "gestionemb_backend/internals/features/laboratorio/equipos/controller"
	organismoController "gestionemb_backend/internals/features/laboratorio/organismos/controller"
	protocoloController "gestionemb_backend/internals/features/laboratorio/protocolos/controller"
	usuarioController "gestionemb_backend/internals/features/usuarios/usuario/controller"
	"gestionemb_backend/internals/helpers/storage"
	"gestionemb_backend/internals/mailer"
	authMw "gestionemb_backend/internals/middlewares/auth"
)

// AdminRoutes: solo administradores. El gate de rol cubre el grupo entero;
// las reglas que dependen del objetivo (anti-lockout) viven en policy.
func AdminRoutes(r fiber.Router, db *gorm.DB, mail *mailer.Mailer, store *storage.Client) {
	r.Use(authMw.OnlyRoles(
		constants.RoleErrorAdmin("el panel de administración"),
		constants.SoloAdmin...,
	))

	usuarios := usuarioController.NewUsuarioAdminController(db, mail)
	r.Get("/usuarios", usuarios.GetAll)
	r.Get("/usuarios/:id", usuarios.GetByID)
	r.Post("/usuarios", usuarios.Create)
	r.Patch("/usuarios/:id/rol", usuarios.CambiarRol)
	r.Patch("/usuarios/:id/activo", usuarios.ToggleActivo)
	r.Delete("/usuarios/:id", usuarios.Delete)

	protocolos := protocoloController.NewProtocoloController(db, store)
	r.Post("/protocolos/:id/validar", protocolos.Validar)
	r.Post("/protocolos/:id/obsoleto", protocolos.MarcarObsoleto)
	r.Delete("/protocolos/:id", protocolos.Delete)

	organismos := organismoController.NewOrganismoController(db, store)
	r.Delete("/organismos/:id", organismos.Delete)

	equipos := equipoController.NewEquipoController(db, store)
	r.Delete("/equipos/:id", equipos.Delete)

	categorias := categoriaController.NewCategoriaController(db)
	r.Post("/categorias", categorias.Create)
	r.Put("/categorias/:id", categorias.Update)
	r.Delete("/categorias/:id", categorias.Delete)

	auditoria := auditoriaController.NewAuditoriaController(db)
	r.Get("/auditoria", auditoria.GetAll)
	r.Get("/auditoria/:id", auditoria.GetByID)

	configuracion := configuracionController.NewConfiguracionController(db)
	r.Get("/configuracion", configuracion.GetAll)
	r.Post("/configuracion", configuracion.Create)
	r.Patch("/configuracion/:clave", configuracion.UpdateValor)

	adjuntos := adjuntoController.NewAdjuntoController(db, store)
	r.Post("/adjuntos/limpiar-huerfanos", adjuntos.LimpiarHuerfanos)
}
