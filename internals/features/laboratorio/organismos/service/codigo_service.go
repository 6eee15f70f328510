package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
)

// Prefijos por tipo de organismo; ORG es el fallback para tipos desconocidos.
var prefijos = map[string]string{
	organismoModel.TipoActinobacteria:   "ACT",
	organismoModel.TipoLevadura:         "LEV",
	organismoModel.TipoHongoFilamentoso: "HON",
}

const maxIntentosCodigo = 3

// Prefijo devuelve el prefijo del código para un tipo.
func Prefijo(tipo string) string {
	if p, ok := prefijos[tipo]; ok {
		return p
	}
	return "ORG"
}

// SiguienteCodigo calcula el próximo código a partir del último existente
// para el tipo. Si no hay códigos previos, o el último está malformado,
// arranca en 1. Formato: EMB-<PFX>-NNN con NNN decimal a 3 dígitos.
func SiguienteCodigo(tipo, ultimoCodigo string) string {
	prefijo := Prefijo(tipo)
	numero := 1

	if strings.HasPrefix(ultimoCodigo, "EMB-"+prefijo+"-") {
		parts := strings.Split(ultimoCodigo, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			numero = n + 1
		}
	}

	return fmt.Sprintf("EMB-%s-%03d", prefijo, numero)
}

// ultimoCodigoPorTipo lee el código más alto existente para el tipo.
// La comparación lexicográfica funciona porque el sufijo es zero-padded.
func ultimoCodigoPorTipo(db *gorm.DB, tipo string) (string, error) {
	var ultimo organismoModel.OrganismoModel
	err := db.Where("tipo = ?", tipo).Order("codigo DESC").First(&ultimo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return ultimo.Codigo, nil
}

// CrearConCodigo asigna el código y persiste el organismo. El read-then-write
// del generador tiene una ventana de carrera bajo creación concurrente: el
// índice único sobre codigo la cierra, y aquí se reintenta con el siguiente
// número cuando el insert choca (gorm.ErrDuplicatedKey).
func CrearConCodigo(db *gorm.DB, organismo *organismoModel.OrganismoModel) error {
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		ultimo, err := ultimoCodigoPorTipo(db, organismo.Tipo)
		if err != nil {
			return err
		}
		organismo.Codigo = SiguienteCodigo(organismo.Tipo, ultimo)

		err = db.Create(organismo).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && intento < maxIntentosCodigo-1 {
			// otro request ganó el código; releer y reintentar
			continue
		}
		return err
	}
	return fmt.Errorf("no se pudo asignar un código único para tipo %s", organismo.Tipo)
}
