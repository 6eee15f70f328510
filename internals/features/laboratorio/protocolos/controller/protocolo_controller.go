package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	adjuntoService "gestionemb_backend/internals/features/laboratorio/adjuntos/service"
	categoriaModel "gestionemb_backend/internals/features/laboratorio/categorias/model"
	protocoloDTO "gestionemb_backend/internals/features/laboratorio/protocolos/dto"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
	protocoloService "gestionemb_backend/internals/features/laboratorio/protocolos/service"
	notificacionService "gestionemb_backend/internals/features/notificaciones/service"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/helpers/storage"
)

var validate = validator.New()

type ProtocoloController struct {
	DB      *gorm.DB
	Storage *storage.Client
}

func NewProtocoloController(db *gorm.DB, store *storage.Client) *ProtocoloController {
	return &ProtocoloController{DB: db, Storage: store}
}

var ordenProtocolos = map[string]string{
	"fecha":   "created_at",
	"titulo":  "titulo",
	"version": "version",
}

// =============================
// 🔍 Listado con filtros
// =============================
func (ctrl *ProtocoloController) GetAll(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "fecha", "desc", helpers.DefaultOpts)

	q := ctrl.DB.Model(&protocoloModel.ProtocoloModel{})
	if estado := c.Query("estado"); estado != "" {
		q = q.Where("estado = ?", estado)
	}
	if cat := c.Query("categoria_id"); cat != "" {
		if catID, err := uuid.Parse(cat); err == nil {
			q = q.Where("categoria_id = ?", catID)
		}
	}
	if autor := c.Query("autor_id"); autor != "" {
		if autorID, err := uuid.Parse(autor); err == nil {
			q = q.Where("autor_id = ?", autorID)
		}
	}
	if busqueda := c.Query("q"); busqueda != "" {
		q = q.Where("titulo ILIKE ?", "%"+busqueda+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando protocolos")
	}

	var protocolos []protocoloModel.ProtocoloModel
	if err := q.Order(p.SafeOrderClause(ordenProtocolos, "fecha")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&protocolos).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando protocolos")
	}

	return helpers.Success(c, "Protocolos", fiber.Map{
		"items": protocoloDTO.FromModelList(protocolos),
		"meta":  helpers.BuildMeta(total, p),
	})
}

func (ctrl *ProtocoloController) GetByID(c *fiber.Ctx) error {
	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}
	return helpers.Success(c, "Protocolo", protocoloDTO.FromModel(protocolo))
}

// GetVersiones lista el linaje completo de un protocolo: la raíz más todas
// las versiones que apuntan a ella, ordenadas por número de versión.
func (ctrl *ProtocoloController) GetVersiones(c *fiber.Ctx) error {
	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	raiz := protocolo.ID
	if protocolo.VersionPadreID != nil {
		raiz = *protocolo.VersionPadreID
	}

	var versiones []protocoloModel.ProtocoloModel
	if err := ctrl.DB.
		Where("id = ? OR version_padre_id = ?", raiz, raiz).
		Order("version ASC").
		Find(&versiones).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando versiones")
	}

	return helpers.Success(c, "Versiones del protocolo", protocoloDTO.FromModelList(versiones))
}

// =============================
// ➕ Crear (siempre nace borrador, versión 1)
// =============================
func (ctrl *ProtocoloController) Create(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input protocoloDTO.CreateProtocoloRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}
	if !ctrl.existeCategoria(input.CategoriaID) {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", fiber.Map{
			"categoria_id": "la categoría no existe",
		})
	}

	protocolo := input.ToModel(*actorID)
	if err := ctrl.DB.Create(protocolo).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear el protocolo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadProtocolo, protocolo.ID.String(),
		"Creación de protocolo "+protocolo.Titulo, nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Protocolo creado",
		protocoloDTO.FromModel(protocolo))
}

// =============================
// ✏️ Actualizar contenido
// =============================
// Un protocolo validado u obsoleto no se edita: su contenido es inmutable y
// los cambios pasan por NuevaVersion. Eso es un conflicto de estado, no un
// error de validación.
func (ctrl *ProtocoloController) Update(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}
	if !ctrl.puedeEditar(c, actorID, protocolo) {
		return helpers.Error(c, fiber.StatusForbidden, "Solo el autor o un administrador puede editar este protocolo")
	}
	if protocolo.Estado == protocoloModel.EstadoValidado || protocolo.Estado == protocoloModel.EstadoObsoleto {
		return helpers.StateConflict(c,
			fmt.Sprintf("un protocolo %s no se edita; crea una nueva versión", protocolo.Estado))
	}

	var input protocoloDTO.UpdateProtocoloRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}
	if input.CategoriaID != nil && !ctrl.existeCategoria(*input.CategoriaID) {
		return helpers.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", fiber.Map{
			"categoria_id": "la categoría no existe",
		})
	}

	input.ApplyToModel(protocolo)
	if err := ctrl.DB.Save(protocolo).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el protocolo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadProtocolo, protocolo.ID.String(),
		"Edición de protocolo "+protocolo.Titulo, nil)

	return helpers.Success(c, "Protocolo actualizado", protocoloDTO.FromModel(protocolo))
}

// =============================
// 🔁 Transiciones de estado
// =============================

func (ctrl *ProtocoloController) EnviarRevision(c *fiber.Ctx) error {
	return ctrl.transicion(c, "enviado a revisión", func(p *protocoloModel.ProtocoloModel, _ uuid.UUID) error {
		return protocoloService.EnviarRevision(p)
	})
}

// Validar: solo administradores (gate en el route group /api/a).
func (ctrl *ProtocoloController) Validar(c *fiber.Ctx) error {
	return ctrl.transicion(c, "validado", func(p *protocoloModel.ProtocoloModel, actorID uuid.UUID) error {
		return protocoloService.Validar(p, actorID, time.Now())
	})
}

func (ctrl *ProtocoloController) MarcarObsoleto(c *fiber.Ctx) error {
	return ctrl.transicion(c, "marcado obsoleto", func(p *protocoloModel.ProtocoloModel, _ uuid.UUID) error {
		return protocoloService.MarcarObsoleto(p)
	})
}

// transicion factoriza el patrón común: cargar, aplicar la transición pura,
// persistir, auditar. ErrConflictoEstado sale como 409 con marcador.
func (ctrl *ProtocoloController) transicion(c *fiber.Ctx, descripcion string,
	aplicar func(*protocoloModel.ProtocoloModel, uuid.UUID) error) error {

	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	if err := aplicar(protocolo, *actorID); err != nil {
		if errors.Is(err, protocoloService.ErrConflictoEstado) {
			return helpers.StateConflict(c, err.Error())
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo aplicar la transición")
	}

	if err := ctrl.DB.Save(protocolo).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo guardar el protocolo")
	}

	accion := constants.AccionEditar
	if protocolo.Estado == protocoloModel.EstadoValidado {
		accion = constants.AccionValidar
	}
	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		accion, constants.EntidadProtocolo, protocolo.ID.String(),
		"Protocolo "+protocolo.Titulo+" "+descripcion, nil)

	// al autor le interesa el cambio de estado que no hizo él mismo
	if protocolo.AutorID != nil && *protocolo.AutorID != *actorID {
		notificacionService.Notificar(ctrl.DB, *protocolo.AutorID,
			"Protocolo "+descripcion,
			"Tu protocolo \""+protocolo.Titulo+"\" fue "+descripcion+".",
			fiber.Map{"protocolo_id": protocolo.ID, "estado": protocolo.Estado})
	}

	return helpers.Success(c, "Protocolo "+descripcion, protocoloDTO.FromModel(protocolo))
}

// =============================
// 🌱 Nueva versión
// =============================
func (ctrl *ProtocoloController) NuevaVersion(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	origen, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	nueva := protocoloService.NuevaVersion(origen, *actorID)
	if err := ctrl.DB.Create(nueva).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear la nueva versión")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadProtocolo, nueva.ID.String(),
		fmt.Sprintf("Nueva versión %d del protocolo %s", nueva.Version, origen.Titulo),
		fiber.Map{"origen_id": origen.ID})

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Nueva versión creada",
		protocoloDTO.FromModel(nueva))
}

// =============================
// 🗑️ Eliminar (admin)
// =============================
// Arrastra adjuntos (filas + archivos best-effort) y filas de asociación.
func (ctrl *ProtocoloController) Delete(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	protocolo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Protocolo no encontrado")
	}

	if err := adjuntoService.EliminarAdjuntosDe(ctrl.DB, ctrl.Storage,
		constants.EntidadProtocolo, protocolo.ID); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudieron eliminar los adjuntos")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("protocolo_id = ?", protocolo.ID).
			Delete(&protocoloModel.ProtocoloEquipoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("protocolo_id = ?", protocolo.ID).
			Delete(&protocoloModel.ProtocoloOrganismoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(protocolo).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el protocolo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEliminar, constants.EntidadProtocolo, protocolo.ID.String(),
		"Eliminación de protocolo "+protocolo.Titulo, nil)

	return helpers.Success(c, "Protocolo eliminado", fiber.Map{"deleted_id": protocolo.ID})
}

/* ======== helpers ======== */

func (ctrl *ProtocoloController) buscar(id string) (*protocoloModel.ProtocoloModel, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	var protocolo protocoloModel.ProtocoloModel
	if err := ctrl.DB.First(&protocolo, "id = ?", pid).Error; err != nil {
		return nil, err
	}
	return &protocolo, nil
}

func (ctrl *ProtocoloController) existeCategoria(id uuid.UUID) bool {
	var count int64
	ctrl.DB.Model(&categoriaModel.CategoriaModel{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// puedeEditar: autor del protocolo o administrador (rol viene del token).
func (ctrl *ProtocoloController) puedeEditar(c *fiber.Ctx, actorID *uuid.UUID, p *protocoloModel.ProtocoloModel) bool {
	if rol, ok := c.Locals("userRole").(string); ok && rol == constants.RolAdministrador {
		return true
	}
	return p.AutorID != nil && actorID != nil && *p.AutorID == *actorID
}
