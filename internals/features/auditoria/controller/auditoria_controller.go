package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditoriaModel "gestionemb_backend/internals/features/auditoria/model"
	helper "gestionemb_backend/internals/helpers"
)

// AuditoriaController: solo lectura. La tabla es append-only; no hay
// endpoints de edición ni borrado.
type AuditoriaController struct {
	DB *gorm.DB
}

func NewAuditoriaController(db *gorm.DB) *AuditoriaController {
	return &AuditoriaController{DB: db}
}

var ordenAuditoria = map[string]string{
	"fecha":   "created_at",
	"accion":  "accion",
	"entidad": "entidad",
}

// GetAll lista el log con filtros opcionales (accion, entidad, usuario_id).
func (ctrl *AuditoriaController) GetAll(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "fecha", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&auditoriaModel.AuditoriaLogModel{})
	if accion := c.Query("accion"); accion != "" {
		q = q.Where("accion = ?", accion)
	}
	if entidad := c.Query("entidad"); entidad != "" {
		q = q.Where("entidad = ?", entidad)
	}
	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		q = q.Where("usuario_id = ?", usuarioID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error consultando auditoría")
	}

	var filas []auditoriaModel.AuditoriaLogModel
	if err := q.Order(p.SafeOrderClause(ordenAuditoria, "fecha")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&filas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error consultando auditoría")
	}

	return helper.Success(c, "Registros de auditoría", fiber.Map{
		"items": filas,
		"meta":  helper.BuildMeta(total, p),
	})
}

// GetByID devuelve un registro puntual.
func (ctrl *AuditoriaController) GetByID(c *fiber.Ctx) error {
	var fila auditoriaModel.AuditoriaLogModel
	if err := ctrl.DB.First(&fila, "id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Registro de auditoría no encontrado")
	}
	return helper.Success(c, "Registro de auditoría", fila)
}
