package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	auditoriaService "gestionemb_backend/internals/features/auditoria/service"
	categoriaModel "gestionemb_backend/internals/features/laboratorio/categorias/model"
	authService "gestionemb_backend/internals/features/usuarios/auth/service"
	helpers "gestionemb_backend/internals/helpers"
)

var validate = validator.New()

type CategoriaController struct {
	DB *gorm.DB
}

func NewCategoriaController(db *gorm.DB) *CategoriaController {
	return &CategoriaController{DB: db}
}

// GetAll: listado simple, filtrable por tipo y activo. Sin paginación:
// las categorías son pocas por diseño.
func (ctrl *CategoriaController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&categoriaModel.CategoriaModel{})
	if tipo := c.Query("tipo"); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if activo := c.Query("activo"); activo == "true" || activo == "false" {
		q = q.Where("activo = ?", activo == "true")
	}

	var categorias []categoriaModel.CategoriaModel
	if err := q.Order("tipo ASC, nombre ASC").Find(&categorias).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Error consultando categorías")
	}
	return helpers.Success(c, "Categorías", categorias)
}

func (ctrl *CategoriaController) GetByID(c *fiber.Ctx) error {
	categoria, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Categoría no encontrada")
	}
	return helpers.Success(c, "Categoría", categoria)
}

func (ctrl *CategoriaController) Create(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)

	var categoria categoriaModel.CategoriaModel
	if err := c.BodyParser(&categoria); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	categoria.ID = uuid.Nil
	categoria.Activo = true

	if err := validate.Struct(&categoria); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.DB.Create(&categoria).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo crear la categoría")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionCrear, constants.EntidadCategoria, categoria.ID.String(),
		"Alta de categoría "+categoria.Nombre+" ("+categoria.Tipo+")", nil)

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Categoría creada", categoria)
}

func (ctrl *CategoriaController) Update(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)

	categoria, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Categoría no encontrada")
	}

	var input struct {
		Nombre      *string `json:"nombre,omitempty" validate:"omitempty,min=2,max=100"`
		Descripcion *string `json:"descripcion,omitempty"`
		Activo      *bool   `json:"activo,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	if input.Nombre != nil {
		categoria.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		categoria.Descripcion = input.Descripcion
	}
	if input.Activo != nil {
		categoria.Activo = *input.Activo
	}

	if err := ctrl.DB.Save(categoria).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la categoría")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEditar, constants.EntidadCategoria, categoria.ID.String(),
		"Edición de categoría "+categoria.Nombre, nil)

	return helpers.Success(c, "Categoría actualizada", categoria)
}

// Delete: borrar una categoría nunca arrastra a sus dueños — protocolos,
// organismos y equipos quedan con categoria_id en null, desvinculados en la
// misma transacción (la referencia es débil, sin FK en el esquema).
func (ctrl *CategoriaController) Delete(c *fiber.Ctx) error {
	actorID := authService.UsuarioIDFromLocals(c)

	categoria, err := ctrl.buscar(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Categoría no encontrada")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, tabla := range []string{"protocolos", "organismos", "equipos"} {
			if err := tx.Table(tabla).
				Where("categoria_id = ?", categoria.ID).
				Update("categoria_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(categoria).Error
	}); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la categoría")
	}

	auditoriaService.RegistrarDesdeCtx(ctrl.DB, c, actorID,
		constants.AccionEliminar, constants.EntidadCategoria, categoria.ID.String(),
		"Eliminación de categoría "+categoria.Nombre, nil)

	return helpers.Success(c, "Categoría eliminada", fiber.Map{"deleted_id": categoria.ID})
}

/* ======== helpers ======== */

func (ctrl *CategoriaController) buscar(id string) (*categoriaModel.CategoriaModel, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	var categoria categoriaModel.CategoriaModel
	if err := ctrl.DB.First(&categoria, "id = ?", cid).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}
