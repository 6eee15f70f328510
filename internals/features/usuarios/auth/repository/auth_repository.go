package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

// FindUsuarioByIdentidad busca por username o email (login acepta ambos).
func FindUsuarioByIdentidad(db *gorm.DB, identidad string) (*uModel.UsuarioModel, error) {
	var usuario uModel.UsuarioModel
	err := db.Preload("Perfil").
		Where("user_name = ? OR email = ?", identidad, identidad).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func FindUsuarioByID(db *gorm.DB, id uuid.UUID) (*uModel.UsuarioModel, error) {
	var usuario uModel.UsuarioModel
	if err := db.Preload("Perfil").First(&usuario, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func FindPerfilByUsuarioID(db *gorm.DB, usuarioID uuid.UUID) (*uModel.PerfilModel, error) {
	var perfil uModel.PerfilModel
	if err := db.First(&perfil, "usuario_id = ?", usuarioID).Error; err != nil {
		return nil, err
	}
	return &perfil, nil
}

// CreateUsuarioConPerfil crea usuario + perfil en una sola transacción.
// El invariante "todo usuario tiene exactamente un perfil" se sostiene aquí:
// o se insertan ambos, o ninguno.
func CreateUsuarioConPerfil(db *gorm.DB, usuario *uModel.UsuarioModel, perfil *uModel.PerfilModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usuario).Error; err != nil {
			return err
		}
		perfil.UsuarioID = usuario.ID
		return tx.Create(perfil).Error
	})
}

func UpdateUsuarioPassword(db *gorm.DB, id uuid.UUID, hash string) error {
	return db.Model(&uModel.UsuarioModel{}).Where("id = ?", id).
		Update("password", hash).Error
}
