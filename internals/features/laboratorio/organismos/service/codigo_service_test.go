package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
)

func TestPrefijo(t *testing.T) {
	assert.Equal(t, "ACT", Prefijo(organismoModel.TipoActinobacteria))
	assert.Equal(t, "LEV", Prefijo(organismoModel.TipoLevadura))
	assert.Equal(t, "HON", Prefijo(organismoModel.TipoHongoFilamentoso))
	// fallback para tipos desconocidos
	assert.Equal(t, "ORG", Prefijo("bacteria_rara"))
}

func TestSiguienteCodigoSinPrevios(t *testing.T) {
	assert.Equal(t, "EMB-ACT-001", SiguienteCodigo(organismoModel.TipoActinobacteria, ""))
	assert.Equal(t, "EMB-LEV-001", SiguienteCodigo(organismoModel.TipoLevadura, ""))
}

func TestSiguienteCodigoIncrementa(t *testing.T) {
	assert.Equal(t, "EMB-ACT-002", SiguienteCodigo(organismoModel.TipoActinobacteria, "EMB-ACT-001"))
	assert.Equal(t, "EMB-ACT-008", SiguienteCodigo(organismoModel.TipoActinobacteria, "EMB-ACT-007"))
	assert.Equal(t, "EMB-HON-100", SiguienteCodigo(organismoModel.TipoHongoFilamentoso, "EMB-HON-099"))
	// más de 3 dígitos sigue funcionando, solo pierde el padding
	assert.Equal(t, "EMB-ACT-1000", SiguienteCodigo(organismoModel.TipoActinobacteria, "EMB-ACT-999"))
}

func TestSiguienteCodigoMalformado(t *testing.T) {
	// sufijo no numérico → reinicia en 1
	assert.Equal(t, "EMB-ACT-001", SiguienteCodigo(organismoModel.TipoActinobacteria, "EMB-ACT-XYZ"))
	// prefijo de otro tipo → se ignora
	assert.Equal(t, "EMB-ACT-001", SiguienteCodigo(organismoModel.TipoActinobacteria, "EMB-LEV-007"))
	// código totalmente ajeno
	assert.Equal(t, "EMB-ACT-001", SiguienteCodigo(organismoModel.TipoActinobacteria, "CODIGO-VIEJO"))
}
