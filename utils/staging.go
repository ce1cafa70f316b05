package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EnsureUploadsDir crea (si hace falta) y devuelve el directorio de staging.
// Se puede sobreescribir con la variable de entorno UPLOADS_DIR.
func EnsureUploadsDir() (string, error) {
	dir := os.Getenv("UPLOADS_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// StagedFileName genera un nombre único: timestamp + sufijo aleatorio,
// conservando la extensión original.
func StagedFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}

// RemoveStagedFile borra el archivo en staging una vez procesado.
func RemoveStagedFile(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("No se pudo borrar el archivo en staging %s: %v", path, err)
	}
}
