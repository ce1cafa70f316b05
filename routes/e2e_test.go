package routes

import (
	"testing"

	"github.com/brunogonzalezj/studymate-backend/models"
)

// Flujo completo: registro de estudiante, login, subida de PDF,
// consulta del documento, generación de resumen y su lectura.
func TestFlujoCompletoEstudiante(t *testing.T) {
	llm := &stubLLM{respuesta: "La república romana en pocas palabras."}
	r, _ := newTestRouter(t, llm)

	// Registro
	w := postJSON(t, r, "/api/users/register", map[string]string{
		"nombre":     "Ana",
		"correo":     "ana@x.com",
		"contrasena": "pw123",
		"rol":        "ESTUDIANTE",
	})
	if w.Code != 201 {
		t.Fatalf("registro falló: %d: %s", w.Code, w.Body.String())
	}
	var ana models.Usuario
	decodeJSON(t, w, &ana)
	if ana.Estudiante == nil {
		t.Fatal("el registro debe crear el perfil de estudiante")
	}

	// Login
	w = postJSON(t, r, "/api/auth/login", map[string]string{
		"correo":     "ana@x.com",
		"contrasena": "pw123",
	})
	if w.Code != 200 {
		t.Fatalf("login falló: %d: %s", w.Code, w.Body.String())
	}
	var sesion struct {
		Usuario models.Usuario `json:"usuario"`
	}
	decodeJSON(t, w, &sesion)
	if sesion.Usuario.Rol != models.RolEstudiante {
		t.Fatalf("rol esperado ESTUDIANTE, recibido %s", sesion.Usuario.Rol)
	}

	// Subida del PDF
	body, ct := multipartUpload(t, map[string]string{
		"estudianteId": itoa(ana.Estudiante.ID),
		"materia":      "Historia",
		"tema":         "Roma",
	}, "la-republica.pdf", buildMiniPDF("La republica romana"))
	w = doRequest(t, r, "POST", "/api/documents/upload", body, ct)
	if w.Code != 201 {
		t.Fatalf("upload falló: %d: %s", w.Code, w.Body.String())
	}
	var doc models.Documento
	decodeJSON(t, w, &doc)

	// El documento queda disponible por id
	w = doRequest(t, r, "GET", "/api/documents/"+itoa(doc.ID), nil, "")
	if w.Code != 200 {
		t.Fatalf("consulta del documento falló: %d", w.Code)
	}

	// Generación del resumen corto
	w = postJSON(t, r, "/api/documents/generate-summary", map[string]interface{}{
		"id":   doc.ID,
		"tipo": "CORTO",
	})
	if w.Code != 200 {
		t.Fatalf("generate-summary falló: %d: %s", w.Code, w.Body.String())
	}
	var generado struct {
		Resumen string `json:"resumen"`
	}
	decodeJSON(t, w, &generado)
	if generado.Resumen == "" {
		t.Fatal("el resumen generado no debe estar vacío")
	}

	// Lectura del resumen persistido
	w = doRequest(t, r, "GET", "/api/documents/resumen/"+itoa(doc.ID), nil, "")
	if w.Code != 200 {
		t.Fatalf("consulta del resumen falló: %d: %s", w.Code, w.Body.String())
	}
	var lectura struct {
		Resumen models.Resumen `json:"resumen"`
	}
	decodeJSON(t, w, &lectura)
	if lectura.Resumen.Contenido != generado.Resumen {
		t.Errorf("el resumen leído (%q) no coincide con el generado (%q)",
			lectura.Resumen.Contenido, generado.Resumen)
	}
}
