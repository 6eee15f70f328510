package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioModel representa la tabla usuarios
type UsuarioModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string         `gorm:"size:50;uniqueIndex;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password  string         `gorm:"not null" json:"-" validate:"required,min=8"`
	Activo    bool           `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relación 1:1 — todo actor autenticado tiene exactamente un perfil.
	// La ausencia de perfil es un estado de error, no "sin rol".
	Perfil *PerfilModel `gorm:"foreignKey:UsuarioID" json:"perfil,omitempty"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
