package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adjuntoController "gestionemb_backend/internals/features/laboratorio/adjuntos/controller"
	categoriaController "gestionemb_backend/internals/features/laboratorio/categorias/controller"
	equipoController "gestionemb_backend/internals/features/laboratorio/equipos/controller"
	organismoController "gestionemb_backend/internals/features/laboratorio/organismos/controller"
	protocoloController "gestionemb_backend/internals/features/laboratorio/protocolos/controller"
	notificacionController "gestionemb_backend/internals/features/notificaciones/controller"
	perfilController "gestionemb_backend/internals/features/usuarios/usuario/controller"
	"gestionemb_backend/internals/helpers/storage"
	"gestionemb_backend/internals/mailer"
)

// UserRoutes: todo usuario autenticado (estudiante o administrador).
func UserRoutes(r fiber.Router, db *gorm.DB, mail *mailer.Mailer, store *storage.Client) {
	perfil := perfilController.NewPerfilController(db, mail, store)
	r.Get("/me", perfil.Me)
	r.Put("/me", perfil.UpdateMe)
	r.Post("/me/foto", perfil.SubirFoto)

	notificaciones := notificacionController.NewNotificacionController(db)
	r.Get("/notificaciones", notificaciones.GetAll)
	r.Post("/notificaciones/:id/leer", notificaciones.MarcarLeida)
	r.Post("/notificaciones/leer-todas", notificaciones.MarcarTodasLeidas)

	protocolos := protocoloController.NewProtocoloController(db, store)
	r.Get("/protocolos", protocolos.GetAll)
	r.Get("/protocolos/:id", protocolos.GetByID)
	r.Get("/protocolos/:id/versiones", protocolos.GetVersiones)
	r.Post("/protocolos", protocolos.Create)
	r.Put("/protocolos/:id", protocolos.Update)
	r.Post("/protocolos/:id/enviar-revision", protocolos.EnviarRevision)
	r.Post("/protocolos/:id/nueva-version", protocolos.NuevaVersion)
	r.Get("/protocolos/:id/equipos", protocolos.GetEquipos)
	r.Post("/protocolos/:id/equipos", protocolos.AsociarEquipo)
	r.Delete("/protocolos/:id/equipos/:objetivo_id", protocolos.DesasociarEquipo)
	r.Get("/protocolos/:id/organismos", protocolos.GetOrganismos)
	r.Post("/protocolos/:id/organismos", protocolos.AsociarOrganismo)
	r.Delete("/protocolos/:id/organismos/:objetivo_id", protocolos.DesasociarOrganismo)

	organismos := organismoController.NewOrganismoController(db, store)
	r.Get("/organismos", organismos.GetAll)
	r.Get("/organismos/:id", organismos.GetByID)
	r.Post("/organismos", organismos.Create)
	r.Put("/organismos/:id", organismos.Update)

	equipos := equipoController.NewEquipoController(db, store)
	r.Get("/equipos", equipos.GetAll)
	r.Get("/equipos/:id", equipos.GetByID)
	r.Post("/equipos", equipos.Create)
	r.Put("/equipos/:id", equipos.Update)
	r.Get("/equipos/:id/mantenimientos", equipos.GetMantenimientos)
	r.Post("/equipos/:id/mantenimientos", equipos.CrearMantenimiento)

	categorias := categoriaController.NewCategoriaController(db)
	r.Get("/categorias", categorias.GetAll)
	r.Get("/categorias/:id", categorias.GetByID)

	adjuntos := adjuntoController.NewAdjuntoController(db, store)
	r.Post("/adjuntos", adjuntos.Upload)
	r.Get("/adjuntos/:tipo_entidad/:id_entidad", adjuntos.GetByEntidad)
	r.Delete("/adjuntos/:id", adjuntos.Delete)
}
