package storage

import (
	"fmt"
	"mime/multipart"
	"path"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var reFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// sanitizeFilename elimina todo salvo letras, números, punto, guion, underscore.
func sanitizeFilename(filename string) string {
	return reFilename.ReplaceAllString(filename, "_")
}

// AdjuntoRelPath arma la convención archivos/<año>/<mes>/<nombre-único>.
func AdjuntoRelPath(originalFilename string, now time.Time) string {
	safe := sanitizeFilename(originalFilename)
	unique := fmt.Sprintf("%s-%s", uuid.New().String()[:8], safe)
	return path.Join("archivos",
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
		unique,
	)
}

// SaveAdjunto guarda el archivo subido bajo archivos/<año>/<mes>/ y devuelve
// la ruta relativa almacenada.
func (s *Client) SaveAdjunto(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abriendo archivo subido: %w", err)
	}
	defer src.Close()

	rel := AdjuntoRelPath(fh.Filename, time.Now())
	return s.Save(rel, src)
}
