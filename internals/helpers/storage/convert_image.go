package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const fotoMaxLado = 512

// FotoPerfilRelPath: convención users/user_<id>.<ext>
func FotoPerfilRelPath(userID uuid.UUID) string {
	return fmt.Sprintf("users/user_%s.webp", userID.String())
}

// SaveFotoPerfil decodifica la imagen subida, la redimensiona y la guarda
// como webp en users/user_<id>.webp. Devuelve la ruta relativa.
func (s *Client) SaveFotoPerfil(userID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abriendo imagen: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decodificando imagen: %w", err)
	}

	// Redimensionar manteniendo aspecto; Fit no agranda imágenes pequeñas
	resized := imaging.Fit(img, fotoMaxLado, fotoMaxLado, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("codificando webp: %w", err)
	}

	rel := FotoPerfilRelPath(userID)
	return s.Save(rel, &buf)
}
