package services

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ExtractTextFromPDF lee el archivo en staging y devuelve su texto plano.
// Falla si el archivo no es un PDF válido.
func ExtractTextFromPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("no se pudo leer el PDF: %w", err)
	}
	defer f.Close()

	var textBuilder bytes.Buffer
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(content)
	}

	return textBuilder.String(), nil
}
