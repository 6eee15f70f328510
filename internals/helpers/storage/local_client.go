package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Client escribe/borra blobs bajo una raíz local (MEDIA_ROOT).
// La raíz llega inyectada por config, no se lee ENV aquí.
type Client struct {
	Root string
}

func NewClient(root string) *Client {
	return &Client{Root: root}
}

// Save escribe el contenido en root/relPath, creando directorios intermedios.
func (s *Client) Save(relPath string, src io.Reader) (string, error) {
	abs, err := s.absPath(relPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("creando directorio: %w", err)
	}
	dst, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("creando archivo: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("escribiendo archivo: %w", err)
	}
	return relPath, nil
}

// Delete elimina el blob físico. Devuelve error solo para que el caller
// decida; los paths best-effort usan DeleteBestEffort.
func (s *Client) Delete(relPath string) error {
	abs, err := s.absPath(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DeleteBestEffort: el borrado físico nunca bloquea la acción principal.
// Un fallo se registra en el canal operacional y se descarta.
func (s *Client) DeleteBestEffort(relPath string) {
	if relPath == "" {
		return
	}
	if err := s.Delete(relPath); err != nil {
		log.Printf("[WARN] no se pudo eliminar archivo físico %s: %v", relPath, err)
	}
}

// absPath valida que el path relativo no escape de la raíz.
func (s *Client) absPath(relPath string) (string, error) {
	clean := filepath.Clean("/" + relPath)
	if strings.Contains(relPath, "..") {
		return "", fmt.Errorf("path inválido: %s", relPath)
	}
	return filepath.Join(s.Root, clean), nil
}
