package service

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditoriaModel "gestionemb_backend/internals/features/auditoria/model"
	helper "gestionemb_backend/internals/helpers"
)

// Entrada describe una acción a auditar.
type Entrada struct {
	UsuarioID        *uuid.UUID
	Accion           string
	Entidad          string
	IDEntidad        string
	Descripcion      string
	IPAddress        string
	UserAgent        string
	DatosAdicionales datatypes.JSON
}

// Registrar escribe la fila de auditoría de forma síncrona, inmediatamente
// después de que la mutación disparadora se confirmó. NUNCA devuelve error
// al caller: cualquier fallo del storage se registra en el canal operacional
// y se descarta, para que la auditoría jamás bloquee la acción principal.
func Registrar(db *gorm.DB, e Entrada) {
	if db == nil {
		log.Printf("[ERROR] auditoría sin DB: accion=%s entidad=%s", e.Accion, e.Entidad)
		return
	}

	fila := auditoriaModel.AuditoriaLogModel{
		UsuarioID:        e.UsuarioID,
		Accion:           e.Accion,
		Entidad:          e.Entidad,
		IDEntidad:        e.IDEntidad,
		Descripcion:      e.Descripcion,
		IPAddress:        e.IPAddress,
		UserAgent:        helper.TruncateUserAgent(e.UserAgent),
		DatosAdicionales: e.DatosAdicionales,
	}

	if err := db.Create(&fila).Error; err != nil {
		log.Printf("[ERROR] registrando auditoría (accion=%s entidad=%s id=%s): %v",
			e.Accion, e.Entidad, e.IDEntidad, err)
	}
}

// RegistrarDesdeCtx completa IP y user-agent desde el request. datos es un
// mapa libre que se serializa a JSON; si la serialización falla, la fila
// entra igual, sin datos adicionales.
func RegistrarDesdeCtx(db *gorm.DB, c *fiber.Ctx, usuarioID *uuid.UUID, accion, entidad, idEntidad, descripcion string, datos fiber.Map) {
	var adicionales datatypes.JSON
	if datos != nil {
		raw, err := sonic.Marshal(datos)
		if err != nil {
			log.Printf("[WARN] serializando datos de auditoría (accion=%s): %v", accion, err)
		} else {
			adicionales = datatypes.JSON(raw)
		}
	}

	Registrar(db, Entrada{
		UsuarioID:        usuarioID,
		Accion:           accion,
		Entidad:          entidad,
		IDEntidad:        idEntidad,
		Descripcion:      descripcion,
		IPAddress:        helper.ClientIP(c),
		UserAgent:        helper.UserAgent(c),
		DatosAdicionales: adicionales,
	})
}
