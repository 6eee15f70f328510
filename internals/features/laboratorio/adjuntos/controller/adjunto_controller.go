package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	adjuntoModel "gestionemb_backend/internals/features/laboratorio/adjuntos/model"
	adjuntoService "gestionemb_backend/internals/features/laboratorio/adjuntos/service"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/helpers/storage"
)

type AdjuntoController struct {
	DB      *gorm.DB
	Storage *storage.Client
}

func NewAdjuntoController(db *gorm.DB, store *storage.Client) *AdjuntoController {
	return &AdjuntoController{DB: db, Storage: store}
}

// =============================
// 📎 Subir adjunto a una entidad
// =============================
// multipart: campo "archivo" + form fields tipo_entidad e id_entidad.
// El objetivo debe existir en el momento de la subida.
func (ctrl *AdjuntoController) Upload(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	tipoEntidad := c.FormValue("tipo_entidad")
	if !constants.EsEntidadAdjuntable(tipoEntidad) {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", fiber.Map{
			"tipo_entidad": "debe ser uno de: protocolo, organismo, equipo",
		})
	}
	idEntidad, err := uuid.Parse(c.FormValue("id_entidad"))
	if err != nil {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", fiber.Map{
			"id_entidad": "identificador inválido",
		})
	}

	existe, err := adjuntoService.ResolverObjetivo(ctrl.DB, tipoEntidad, idEntidad)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error resolviendo la entidad objetivo")
	}
	if !existe {
		return helpers.Error(c, fiber.StatusNotFound, "La entidad objetivo no existe")
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Falta el archivo 'archivo'")
	}

	rel, err := ctrl.Storage.SaveAdjunto(fh)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el archivo")
	}

	adjunto := adjuntoModel.ArchivoAdjuntoModel{
		NombreOriginal: fh.Filename,
		Ruta:           rel,
		Tamano:         fh.Size,
		TipoMime:       fh.Header.Get("Content-Type"),
		TipoEntidad:    tipoEntidad,
		IDEntidad:      idEntidad,
		SubidoPorID:    actorID,
	}
	if err := ctrl.DB.Create(&adjunto).Error; err != nil {
		// la fila no entró; no dejar el archivo colgando
		ctrl.Storage.DeleteBestEffort(rel)
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el adjunto")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadAdjunto, adjunto.ID.String(),
		fmt.Sprintf("Subida de adjunto %s a %s %s", fh.Filename, tipoEntidad, idEntidad),
		nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Adjunto subido", adjunto)
}

// =============================
// 🔍 Listar adjuntos de una entidad
// =============================
func (ctrl *AdjuntoController) GetByEntidad(c *fiber.Ctx) error {
	tipoEntidad := c.Params("tipo_entidad")
	if !constants.EsEntidadAdjuntable(tipoEntidad) {
		return helpers.Error(c, fiber.StatusBadRequest, "Tipo de entidad no adjuntable")
	}
	idEntidad, err := uuid.Parse(c.Params("id_entidad"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	var adjuntos []adjuntoModel.ArchivoAdjuntoModel
	if err := ctrl.DB.
		Where("tipo_entidad = ? AND id_entidad = ?", tipoEntidad, idEntidad).
		Order("created_at DESC").
		Find(&adjuntos).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando adjuntos")
	}

	return helpers.Success(c, "Adjuntos", adjuntos)
}

// =============================
// 🗑️ Eliminar un adjunto
// =============================
// Quien subió el archivo o un administrador. El borrado físico es
// best-effort; la fila cae siempre.
func (ctrl *AdjuntoController) Delete(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	aid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	var adjunto adjuntoModel.ArchivoAdjuntoModel
	if err := ctrl.DB.First(&adjunto, "id = ?", aid).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Adjunto no encontrado")
	}

	rol, _ := c.Locals("userRole").(string)
	esPropio := adjunto.SubidoPorID != nil && *adjunto.SubidoPorID == *actorID
	if rol != constants.RolAdministrador && !esPropio {
		return helpers.Error(c, fiber.StatusForbidden, "Solo quien subió el archivo o un administrador puede eliminarlo")
	}

	ctrl.Storage.DeleteBestEffort(adjunto.Ruta)
	if err := ctrl.DB.Delete(&adjunto).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el adjunto")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEliminar, constants.EntidadAdjunto, adjunto.ID.String(),
		"Eliminación de adjunto "+adjunto.NombreOriginal, nil)

	return helpers.Success(c, "Adjunto eliminado", fiber.Map{"deleted_id": adjunto.ID})
}

// =============================
// 🧹 Limpieza de huérfanos (admin)
// =============================
func (ctrl *AdjuntoController) LimpiarHuerfanos(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)

	limpiados, err := adjuntoService.LimpiarHuerfanos(ctrl.DB, ctrl.Storage)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error limpiando adjuntos huérfanos")
	}

	if limpiados > 0 {
		auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
			constants.AccionEliminar, constants.EntidadAdjunto, "",
			fmt.Sprintf("Limpieza de %d adjuntos huérfanos", limpiados), nil)
	}

	return helpers.Success(c, "Limpieza completada", fiber.Map{"limpiados": limpiados})
}
