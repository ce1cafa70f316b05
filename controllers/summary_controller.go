package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/models"
	"github.com/brunogonzalezj/studymate-backend/services"
)

const (
	TipoExtenso    = "EXTENSO"
	TipoCorto      = "CORTO"
	TipoFlashcards = "FLASHCARDS"
)

// Puntaje fijo asignado a cada resumen generado.
const calidadResumen = 85

type GenerateInput struct {
	ID   uint   `json:"id"`
	Tipo string `json:"tipo"`
}

func GenerateSummary(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	llm := c.MustGet("llm").(services.TextGenerator)

	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el ID del documento"})
		return
	}
	switch input.Tipo {
	case TipoExtenso, TipoCorto, TipoFlashcards:
	case "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el tipo de generación"})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de generación no reconocido"})
		return
	}

	var documento models.Documento
	if err := db.First(&documento, input.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Documento no encontrado"})
		return
	}

	if input.Tipo == TipoFlashcards {
		generarFlashcards(c, db, llm, &documento)
		return
	}
	generarResumen(c, db, llm, &documento, input.Tipo)
}

func generarResumen(c *gin.Context, db *gorm.DB, llm services.TextGenerator, documento *models.Documento, tipo string) {
	instruccion := "Genera un resumen breve en español del siguiente texto, de no más de un párrafo:"
	if tipo == TipoExtenso {
		instruccion = "Genera un resumen extenso y detallado en español del siguiente texto, conservando las ideas principales y los conceptos clave:"
	}

	texto, err := llm.GenerateText(c.Request.Context(), instruccion+"\n\n"+documento.Contenido)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar resumen", "detalle": err.Error()})
		return
	}

	resumen := models.Resumen{
		Contenido:   texto,
		Calidad:     calidadResumen,
		DocumentoID: documento.ID,
	}
	if err := db.Create(&resumen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el resumen", "detalle": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Resumen generado", "resumen": texto})
}

func generarFlashcards(c *gin.Context, db *gorm.DB, llm services.TextGenerator, documento *models.Documento) {
	prompt := fmt.Sprintf(`Eres un asistente de estudio.
A partir del siguiente texto, genera al menos 5 flashcards en español.
Responde únicamente con un objeto JSON con esta forma exacta:
{"flashcards": [{"question": "...", "answer": "..."}]}

Texto:
%s`, documento.Contenido)

	raw, err := llm.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar flashcards", "detalle": err.Error()})
		return
	}

	// Limpiar el markdown que suele rodear la respuesta
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var payload struct {
		Flashcards []struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"flashcards"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la respuesta del modelo", "detalle": err.Error()})
		return
	}
	if payload.Flashcards == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la respuesta del modelo", "detalle": "falta el campo flashcards"})
		return
	}

	flashcards := make([]models.Flashcard, 0, len(payload.Flashcards))
	for _, qa := range payload.Flashcards {
		if qa.Question == "" || qa.Answer == "" {
			continue
		}
		flashcards = append(flashcards, models.Flashcard{
			Pregunta:    qa.Question,
			Respuesta:   qa.Answer,
			DocumentoID: documento.ID,
		})
	}

	// El lote completo se inserta en una sola transacción
	if len(flashcards) > 0 {
		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&flashcards).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar las flashcards", "detalle": err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensaje":    "Flashcards generadas",
		"total":      len(flashcards),
		"flashcards": flashcards,
	})
}

func GetFlashcardsPorDocumento(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	documentoID, err := strconv.Atoi(c.Param("documentoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var flashcards []models.Flashcard
	if err := db.Where("documento_id = ?", documentoID).Find(&flashcards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener las flashcards", "detalle": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flashcards)
}

// GetFlashcardsPorEstudiante devuelve las flashcards de todos los
// documentos de un estudiante.
func GetFlashcardsPorEstudiante(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	estudianteID, err := strconv.Atoi(c.Param("estudianteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estudianteId inválido"})
		return
	}

	var flashcards []models.Flashcard
	err = db.Joins("JOIN documentos ON documentos.id = flashcards.documento_id").
		Where("documentos.estudiante_id = ?", estudianteID).
		Find(&flashcards).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener las flashcards", "detalle": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flashcards)
}

func GetResumenPorDocumento(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	documentoID, err := strconv.Atoi(c.Param("documentoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var resumen models.Resumen
	if err := db.Where("documento_id = ?", documentoID).Order("id").First(&resumen).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resumen no encontrado"})
		return
	}

	var documento models.Documento
	if err := db.First(&documento, documentoID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el documento", "detalle": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resumen": resumen,
		"documento": gin.H{
			"titulo":  documento.Titulo,
			"materia": documento.Materia,
			"tema":    documento.Tema,
		},
	})
}
