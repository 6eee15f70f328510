package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestionemb_backend/internals/constants"
	adjuntoModel "gestionemb_backend/internals/features/laboratorio/adjuntos/model"
	equipoModel "gestionemb_backend/internals/features/laboratorio/equipos/model"
	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
	"gestionemb_backend/internals/helpers/storage"
)

// resolvers: tabla explícita tipo_entidad → lookup de existencia.
// La referencia polimórfica no tiene FK en el storage, así que la
// resolución vive aquí, tipada, y no en un join genérico.
var resolvers = map[string]func(db *gorm.DB, id uuid.UUID) (bool, error){
	constants.EntidadProtocolo: existeEn[protocoloModel.ProtocoloModel],
	constants.EntidadOrganismo: existeEn[organismoModel.OrganismoModel],
	constants.EntidadEquipo:    existeEn[equipoModel.EquipoModel],
}

func existeEn[T any](db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	var modelo T
	if err := db.Model(&modelo).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolverObjetivo valida que (tipoEntidad, id) apunte a una fila viva.
func ResolverObjetivo(db *gorm.DB, tipoEntidad string, id uuid.UUID) (bool, error) {
	resolver, ok := resolvers[tipoEntidad]
	if !ok {
		return false, fmt.Errorf("tipo de entidad no adjuntable: %s", tipoEntidad)
	}
	return resolver(db, id)
}

// EliminarAdjuntosDe borra los adjuntos de una entidad: filas en DB y
// archivos físicos. El borrado físico es best-effort — un fallo se loguea
// y las filas se eliminan igual.
func EliminarAdjuntosDe(db *gorm.DB, store *storage.Client, tipoEntidad string, id uuid.UUID) error {
	var adjuntos []adjuntoModel.ArchivoAdjuntoModel
	if err := db.Where("tipo_entidad = ? AND id_entidad = ?", tipoEntidad, id).Find(&adjuntos).Error; err != nil {
		return err
	}
	if len(adjuntos) == 0 {
		return nil
	}

	for _, a := range adjuntos {
		store.DeleteBestEffort(a.Ruta)
	}

	return db.Where("tipo_entidad = ? AND id_entidad = ?", tipoEntidad, id).
		Delete(&adjuntoModel.ArchivoAdjuntoModel{}).Error
}

// LimpiarHuerfanos recorre los adjuntos cuyo objetivo ya no existe y los
// elimina (fila + archivo). Devuelve cuántos se limpiaron.
func LimpiarHuerfanos(db *gorm.DB, store *storage.Client) (int, error) {
	var adjuntos []adjuntoModel.ArchivoAdjuntoModel
	if err := db.Find(&adjuntos).Error; err != nil {
		return 0, err
	}

	limpiados := 0
	for _, a := range adjuntos {
		existe, err := ResolverObjetivo(db, a.TipoEntidad, a.IDEntidad)
		if err != nil {
			log.Printf("[WARN] resolviendo objetivo de adjunto %s: %v", a.ID, err)
			continue
		}
		if existe {
			continue
		}
		store.DeleteBestEffort(a.Ruta)
		if err := db.Delete(&adjuntoModel.ArchivoAdjuntoModel{}, "id = ?", a.ID).Error; err != nil {
			log.Printf("[WARN] eliminando adjunto huérfano %s: %v", a.ID, err)
			continue
		}
		limpiados++
	}
	return limpiados, nil
}
