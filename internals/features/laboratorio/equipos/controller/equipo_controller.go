package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	adjuntoService "gestionemb_backend/internals/features/laboratorio/adjuntos/service"
	equipoModel "gestionemb_backend/internals/features/laboratorio/equipos/model"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/helpers/storage"
)

var validate = validator.New()

type EquipoController struct {
	DB      *gorm.DB
	Storage *storage.Client
}

func NewEquipoController(db *gorm.DB, store *storage.Client) *EquipoController {
	return &EquipoController{DB: db, Storage: store}
}

var ordenEquipos = map[string]string{
	"fecha":  "created_at",
	"nombre": "nombre",
	"estado": "estado",
}

// =============================
// 🔍 Listado con filtros
// =============================
// ?mantenimiento_proximo=true filtra los equipos cuyo próximo mantenimiento
// cae dentro de la ventana de aviso (incluye vencidos).
func (ctrl *EquipoController) GetAll(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "nombre", "asc", helpers.DefaultOpts)

	q := ctrl.DB.Model(&equipoModel.EquipoModel{})
	if estado := c.Query("estado"); estado != "" {
		q = q.Where("estado = ?", estado)
	}
	if activo := c.Query("activo"); activo == "true" || activo == "false" {
		q = q.Where("activo = ?", activo == "true")
	}
	if busqueda := c.Query("q"); busqueda != "" {
		like := "%" + busqueda + "%"
		q = q.Where("nombre ILIKE ? OR numero_serie ILIKE ? OR ubicacion ILIKE ?", like, like, like)
	}
	if c.Query("mantenimiento_proximo") == "true" {
		limite := time.Now().AddDate(0, 0, equipoModel.DiasAvisoMantenimiento)
		q = q.Where("fecha_proximo_mantenimiento IS NOT NULL AND fecha_proximo_mantenimiento <= ?", limite)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando equipos")
	}

	var equipos []equipoModel.EquipoModel
	if err := q.Order(p.SafeOrderClause(ordenEquipos, "nombre")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&equipos).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando equipos")
	}

	return helpers.Success(c, "Equipos", fiber.Map{
		"items": equipos,
		"meta":  helpers.BuildMeta(total, p),
	})
}

func (ctrl *EquipoController) GetByID(c *fiber.Ctx) error {
	equipo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Equipo no encontrado")
	}
	return helpers.Success(c, "Equipo", equipo)
}

// =============================
// ➕ Crear
// =============================
func (ctrl *EquipoController) Create(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var equipo equipoModel.EquipoModel
	if err := c.BodyParser(&equipo); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	equipo.ID = uuid.Nil
	if equipo.Estado == "" {
		equipo.Estado = equipoModel.EstadoDisponible
	}
	equipo.Activo = true

	if err := validate.Struct(&equipo); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.DB.Create(&equipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Equipo ya existe", fiber.Map{
				"numero_serie": "ya existe un equipo con ese número de serie",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear el equipo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadEquipo, equipo.ID.String(),
		"Alta de equipo "+equipo.Nombre, nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Equipo creado", equipo)
}

// =============================
// ✏️ Actualizar (parcial)
// =============================
func (ctrl *EquipoController) Update(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	equipo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Equipo no encontrado")
	}

	var input struct {
		Nombre                   *string    `json:"nombre,omitempty" validate:"omitempty,min=2,max=255"`
		Modelo                   *string    `json:"modelo,omitempty"`
		NumeroSerie              *string    `json:"numero_serie,omitempty"`
		Marca                    *string    `json:"marca,omitempty"`
		EspecificacionesTecnicas *string    `json:"especificaciones_tecnicas,omitempty"`
		Ubicacion                *string    `json:"ubicacion,omitempty"`
		Estado                   *string    `json:"estado,omitempty" validate:"omitempty,oneof=disponible en_uso mantenimiento fuera_servicio"`
		FechaAdquisicion         *time.Time `json:"fecha_adquisicion,omitempty"`
		ResponsableID            *uuid.UUID `json:"responsable_id,omitempty"`
		CategoriaID              *uuid.UUID `json:"categoria_id,omitempty"`
		Activo                   *bool      `json:"activo,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	if input.Nombre != nil {
		equipo.Nombre = *input.Nombre
	}
	if input.Modelo != nil {
		equipo.Modelo = input.Modelo
	}
	if input.NumeroSerie != nil {
		equipo.NumeroSerie = input.NumeroSerie
	}
	if input.Marca != nil {
		equipo.Marca = input.Marca
	}
	if input.EspecificacionesTecnicas != nil {
		equipo.EspecificacionesTecnicas = input.EspecificacionesTecnicas
	}
	if input.Ubicacion != nil {
		equipo.Ubicacion = input.Ubicacion
	}
	if input.Estado != nil {
		equipo.Estado = *input.Estado
	}
	if input.FechaAdquisicion != nil {
		equipo.FechaAdquisicion = input.FechaAdquisicion
	}
	if input.ResponsableID != nil {
		equipo.ResponsableID = input.ResponsableID
	}
	if input.CategoriaID != nil {
		equipo.CategoriaID = input.CategoriaID
	}
	if input.Activo != nil {
		equipo.Activo = *input.Activo
	}

	if err := ctrl.DB.Save(equipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Equipo ya existe", fiber.Map{
				"numero_serie": "ya existe un equipo con ese número de serie",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el equipo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadEquipo, equipo.ID.String(),
		"Edición de equipo "+equipo.Nombre, nil)

	return helpers.Success(c, "Equipo actualizado", equipo)
}

// =============================
// 🗑️ Eliminar (admin) — arrastra adjuntos, historial y asociaciones
// =============================
func (ctrl *EquipoController) Delete(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	equipo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Equipo no encontrado")
	}

	if err := adjuntoService.EliminarAdjuntosDe(ctrl.DB, ctrl.Storage,
		constants.EntidadEquipo, equipo.ID); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudieron eliminar los adjuntos")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipo_id = ?", equipo.ID).
			Delete(&equipoModel.HistorialMantenimientoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("equipo_id = ?", equipo.ID).
			Delete(&protocoloModel.ProtocoloEquipoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(equipo).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el equipo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEliminar, constants.EntidadEquipo, equipo.ID.String(),
		"Eliminación de equipo "+equipo.Nombre, nil)

	return helpers.Success(c, "Equipo eliminado", fiber.Map{"deleted_id": equipo.ID})
}

/* ======== helpers ======== */

func (ctrl *EquipoController) buscar(id string) (*equipoModel.EquipoModel, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	var equipo equipoModel.EquipoModel
	if err := ctrl.DB.First(&equipo, "id = ?", eid).Error; err != nil {
		return nil, err
	}
	return &equipo, nil
}
