package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUsuarioRequest — para register / create por admin
type CreateUsuarioRequest struct {
	UserName  string  `json:"user_name" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,min=8"`
	Nombre    string  `json:"nombre" validate:"required,min=2,max=100"`
	Apellidos string  `json:"apellidos" validate:"omitempty,max=100"`
	Telefono  *string `json:"telefono,omitempty" validate:"omitempty,max=30"`
	Rol       string  `json:"rol" validate:"omitempty,oneof=administrador estudiante"`
	Activo    *bool   `json:"activo,omitempty"`
}

// Normalize — trim & normalización básica
func (r *CreateUsuarioRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellidos = strings.TrimSpace(r.Apellidos)
	r.Rol = strings.TrimSpace(strings.ToLower(r.Rol))
}

// ToModels — construye usuario + perfil (hash del password en el caller)
func (r *CreateUsuarioRequest) ToModels() (*uModel.UsuarioModel, *uModel.PerfilModel) {
	u := &uModel.UsuarioModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password, // hashear antes de persistir
		Activo:   true,
	}
	if r.Activo != nil {
		u.Activo = *r.Activo
	}
	p := &uModel.PerfilModel{
		Rol:       r.Rol,
		Nombre:    r.Nombre,
		Apellidos: r.Apellidos,
		Telefono:  r.Telefono,
	}
	p.SetDefaultValues()
	return u, p
}

// UpdatePerfilRequest — edición self-service: SOLO campos no privilegiados.
// Rol y activo no existen aquí a propósito; esos pasan por la vía admin.
type UpdatePerfilRequest struct {
	Email        *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Nombre       *string `json:"nombre,omitempty" validate:"omitempty,min=2,max=100"`
	Apellidos    *string `json:"apellidos,omitempty" validate:"omitempty,max=100"`
	Telefono     *string `json:"telefono,omitempty" validate:"omitempty,max=30"`
	Departamento *string `json:"departamento,omitempty" validate:"omitempty,max=100"`
	Cargo        *string `json:"cargo,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdatePerfilRequest) Normalize() {
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Nombre != nil {
		v := strings.TrimSpace(*r.Nombre)
		r.Nombre = &v
	}
	if r.Apellidos != nil {
		v := strings.TrimSpace(*r.Apellidos)
		r.Apellidos = &v
	}
}

// ApplyToModels — aplica el cambio parcial a usuario + perfil existentes
func (r *UpdatePerfilRequest) ApplyToModels(u *uModel.UsuarioModel, p *uModel.PerfilModel) {
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Nombre != nil {
		p.Nombre = *r.Nombre
	}
	if r.Apellidos != nil {
		p.Apellidos = *r.Apellidos
	}
	if r.Telefono != nil {
		p.Telefono = r.Telefono
	}
	if r.Departamento != nil {
		p.Departamento = r.Departamento
	}
	if r.Cargo != nil {
		p.Cargo = r.Cargo
	}
}

// CambiarRolRequest — solo vía admin
type CambiarRolRequest struct {
	Rol string `json:"rol" validate:"required,oneof=administrador estudiante"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UsuarioResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	Rol       string    `json:"rol"`
	Nombre    string    `json:"nombre"`
	Apellidos string    `json:"apellidos"`
	Telefono  *string   `json:"telefono,omitempty"`
	Foto      *string   `json:"foto_perfil,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// NOTE: Password nunca se expone
}

// FromModels — mapea usuario + perfil a la respuesta pública
func FromModels(u *uModel.UsuarioModel, p *uModel.PerfilModel) *UsuarioResponse {
	if u == nil {
		return nil
	}
	resp := &UsuarioResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if p != nil {
		resp.Rol = p.Rol
		resp.Nombre = p.Nombre
		resp.Apellidos = p.Apellidos
		resp.Telefono = p.Telefono
		resp.Foto = p.FotoPerfil
	}
	return resp
}

func FromModelList(list []uModel.UsuarioModel) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModels(&list[i], list[i].Perfil))
	}
	return out
}
