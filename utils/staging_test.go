package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureUploadsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "staging")
	t.Setenv("UPLOADS_DIR", dir)

	got, err := EnsureUploadsDir()
	if err != nil {
		t.Fatalf("EnsureUploadsDir falló: %v", err)
	}
	if got != dir {
		t.Errorf("directorio esperado %s, recibido %s", dir, got)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("el directorio de staging debe existir")
	}
}

func TestStagedFileName(t *testing.T) {
	a := StagedFileName("apuntes.pdf")
	b := StagedFileName("apuntes.pdf")

	if a == b {
		t.Error("dos archivos con el mismo nombre no deben colisionar")
	}
	if !strings.HasSuffix(a, ".pdf") {
		t.Errorf("debe conservarse la extensión original: %s", a)
	}
	if strings.Contains(a, string(os.PathSeparator)) {
		t.Errorf("el nombre no debe contener separadores de ruta: %s", a)
	}
}

func TestRemoveStagedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staged.pdf")
	if err := os.WriteFile(path, []byte("contenido"), 0o644); err != nil {
		t.Fatalf("no se pudo crear el archivo: %v", err)
	}

	RemoveStagedFile(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("el archivo en staging debe borrarse")
	}
}
