package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func escribirPDFMinimo(t *testing.T, text string) string {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 6)

	buf.WriteString("%PDF-1.4\n")
	writeObj := func(n int, body string) {
		offsets[n] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n, body)
	}

	stream := fmt.Sprintf("BT /F1 18 Tf 72 712 Td (%s) Tj ET", text)
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>")
	writeObj(4, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xrefPos := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefPos)

	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("no se pudo escribir el PDF de prueba: %v", err)
	}
	return path
}

func TestExtractTextFromPDF(t *testing.T) {
	path := escribirPDFMinimo(t, "Hola StudyMate")

	texto, err := ExtractTextFromPDF(path)
	if err != nil {
		t.Fatalf("la extracción falló: %v", err)
	}
	if !strings.Contains(texto, "Hola") {
		t.Errorf("el texto extraído debería contener 'Hola', recibido %q", texto)
	}
}

func TestExtractTextFromPDFCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basura.pdf")
	if err := os.WriteFile(path, []byte("esto no es un PDF"), 0o644); err != nil {
		t.Fatalf("no se pudo escribir el archivo: %v", err)
	}

	if _, err := ExtractTextFromPDF(path); err == nil {
		t.Fatal("un archivo corrupto debe devolver error")
	}
}

func TestExtractTextFromPDFInexistente(t *testing.T) {
	if _, err := ExtractTextFromPDF(filepath.Join(t.TempDir(), "no-existe.pdf")); err == nil {
		t.Fatal("un archivo inexistente debe devolver error")
	}
}
