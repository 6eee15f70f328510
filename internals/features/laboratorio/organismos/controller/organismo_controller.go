package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	adjuntoService "gestionemb_backend/internals/features/laboratorio/adjuntos/service"
	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
	organismoService "gestionemb_backend/internals/features/laboratorio/organismos/service"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
	"gestionemb_backend/internals/helpers/storage"
)

var validate = validator.New()

type OrganismoController struct {
	DB      *gorm.DB
	Storage *storage.Client
}

func NewOrganismoController(db *gorm.DB, store *storage.Client) *OrganismoController {
	return &OrganismoController{DB: db, Storage: store}
}

var ordenOrganismos = map[string]string{
	"fecha":  "created_at",
	"codigo": "codigo",
	"nombre": "nombre_cientifico",
}

// =============================
// 🔍 Listado con filtros
// =============================
func (ctrl *OrganismoController) GetAll(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "codigo", "asc", helpers.DefaultOpts)

	q := ctrl.DB.Model(&organismoModel.OrganismoModel{})
	if tipo := c.Query("tipo"); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if activo := c.Query("activo"); activo == "true" || activo == "false" {
		q = q.Where("activo = ?", activo == "true")
	}
	if busqueda := c.Query("q"); busqueda != "" {
		like := "%" + busqueda + "%"
		q = q.Where("nombre_cientifico ILIKE ? OR codigo ILIKE ? OR cepa ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando organismos")
	}

	var organismos []organismoModel.OrganismoModel
	if err := q.Order(p.SafeOrderClause(ordenOrganismos, "codigo")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&organismos).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando organismos")
	}

	return helpers.Success(c, "Organismos", fiber.Map{
		"items": organismos,
		"meta":  helpers.BuildMeta(total, p),
	})
}

func (ctrl *OrganismoController) GetByID(c *fiber.Ctx) error {
	organismo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Organismo no encontrado")
	}
	return helpers.Success(c, "Organismo", organismo)
}

// =============================
// ➕ Crear (el código lo asigna el generador, nunca el cliente)
// =============================
func (ctrl *OrganismoController) Create(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var organismo organismoModel.OrganismoModel
	if err := c.BodyParser(&organismo); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	// campos asignados por el servidor
	organismo.ID = uuid.Nil
	organismo.Codigo = "" // lo asigna CrearConCodigo
	organismo.CreadorID = actorID
	organismo.Activo = true

	if err := validate.Struct(&organismo); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := organismoService.CrearConCodigo(ctrl.DB, &organismo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Organismo ya existe", fiber.Map{
				"nombre_cientifico": "ya existe un organismo con ese nombre y cepa",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear el organismo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadOrganismo, organismo.ID.String(),
		"Alta de organismo "+organismo.Codigo+" ("+organismo.NombreCientifico+")", nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Organismo creado", organismo)
}

// =============================
// ✏️ Actualizar (parcial; codigo y tipo son inmutables)
// =============================
// El tipo no se cambia después del alta: el código ya lleva su prefijo.
func (ctrl *OrganismoController) Update(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	organismo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Organismo no encontrado")
	}

	var input struct {
		NombreCientifico            *string    `json:"nombre_cientifico,omitempty" validate:"omitempty,min=2,max=255"`
		Cepa                        *string    `json:"cepa,omitempty"`
		Origen                      *string    `json:"origen,omitempty"`
		CaracteristicasMorfologicas *string    `json:"caracteristicas_morfologicas,omitempty"`
		CondicionesCultivo          *string    `json:"condiciones_cultivo,omitempty"`
		TemperaturaOptima           *float64   `json:"temperatura_optima,omitempty"`
		PHOptimo                    *float64   `json:"ph_optimo,omitempty"`
		CategoriaID                 *uuid.UUID `json:"categoria_id,omitempty"`
		Activo                      *bool      `json:"activo,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	if input.NombreCientifico != nil {
		organismo.NombreCientifico = *input.NombreCientifico
	}
	if input.Cepa != nil {
		organismo.Cepa = *input.Cepa
	}
	if input.Origen != nil {
		organismo.Origen = input.Origen
	}
	if input.CaracteristicasMorfologicas != nil {
		organismo.CaracteristicasMorfologicas = input.CaracteristicasMorfologicas
	}
	if input.CondicionesCultivo != nil {
		organismo.CondicionesCultivo = input.CondicionesCultivo
	}
	if input.TemperaturaOptima != nil {
		organismo.TemperaturaOptima = input.TemperaturaOptima
	}
	if input.PHOptimo != nil {
		organismo.PHOptimo = input.PHOptimo
	}
	if input.CategoriaID != nil {
		organismo.CategoriaID = input.CategoriaID
	}
	if input.Activo != nil {
		organismo.Activo = *input.Activo
	}

	if err := ctrl.DB.Save(organismo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.ErrorWithDetails(c, fiber.StatusConflict, "Organismo ya existe", fiber.Map{
				"nombre_cientifico": "ya existe un organismo con ese nombre y cepa",
			})
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el organismo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadOrganismo, organismo.ID.String(),
		"Edición de organismo "+organismo.Codigo, nil)

	return helpers.Success(c, "Organismo actualizado", organismo)
}

// =============================
// 🗑️ Eliminar (admin) — arrastra sus adjuntos y asociaciones
// =============================
func (ctrl *OrganismoController) Delete(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)
	if actorID == nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	organismo, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Organismo no encontrado")
	}

	if err := adjuntoService.EliminarAdjuntosDe(ctrl.DB, ctrl.Storage,
		constants.EntidadOrganismo, organismo.ID); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudieron eliminar los adjuntos")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organismo_id = ?", organismo.ID).
			Delete(&protocoloModel.ProtocoloOrganismoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(organismo).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el organismo")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEliminar, constants.EntidadOrganismo, organismo.ID.String(),
		"Eliminación de organismo "+organismo.Codigo, nil)

	return helpers.Success(c, "Organismo eliminado", fiber.Map{"deleted_id": organismo.ID})
}

/* ======== helpers ======== */

func (ctrl *OrganismoController) buscar(id string) (*organismoModel.OrganismoModel, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	var organismo organismoModel.OrganismoModel
	if err := ctrl.DB.First(&organismo, "id = ?", oid).Error; err != nil {
		return nil, err
	}
	return &organismo, nil
}
