package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gestionemb_backend/internals/configs"
	uModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

// TokenPair agrupa access + refresh emitidos en el login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GenerateTokenPair emite el par de tokens. remember_me extiende el TTL
// del refresh según la política de sesión configurada.
func GenerateTokenPair(usuario *uModel.UsuarioModel, rememberMe bool) (*TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("JWT secrets no configurados")
	}

	rol := ""
	if usuario.Perfil != nil {
		rol = usuario.Perfil.Rol
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"id":        usuario.ID.String(),
		"user_name": usuario.UserName,
		"rol":       rol,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(configs.App.AccessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refreshTTL := configs.App.RefreshTTL
	if rememberMe {
		refreshTTL = configs.App.RememberMeTTL
	}
	refreshClaims := jwt.MapClaims{
		"id":  usuario.ID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
