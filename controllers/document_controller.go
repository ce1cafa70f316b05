package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/models"
	"github.com/brunogonzalezj/studymate-backend/services"
	"github.com/brunogonzalezj/studymate-backend/utils"
	"github.com/brunogonzalezj/studymate-backend/ws"
)

func UploadDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	file, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se envió ningún archivo PDF"})
		return
	}
	if file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El archivo está vacío"})
		return
	}

	estudianteID, err := strconv.Atoi(c.PostForm("estudianteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estudianteId inválido"})
		return
	}

	dir, err := utils.EnsureUploadsDir()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo preparar el directorio de staging", "detalle": err.Error()})
		return
	}
	stagedPath := filepath.Join(dir, utils.StagedFileName(file.Filename))
	if err := c.SaveUploadedFile(file, stagedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el archivo", "detalle": err.Error()})
		return
	}
	// El archivo en staging se borra en cualquier salida
	defer utils.RemoveStagedFile(stagedPath)

	contenido, err := services.ExtractTextFromPDF(stagedPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar el PDF", "detalle": err.Error()})
		return
	}

	// El título por defecto es el nombre del archivo sin extensión
	titulo := c.PostForm("titulo")
	if titulo == "" {
		titulo = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}

	documento := models.Documento{
		Titulo:       titulo,
		Contenido:    contenido,
		Materia:      c.PostForm("materia"),
		Tema:         c.PostForm("tema"),
		Formato:      "PDF",
		EstudianteID: uint(estudianteID),
	}
	if err := db.Create(&documento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el documento", "detalle": err.Error()})
		return
	}

	ws.BroadcastDocumentListChanged()

	c.JSON(http.StatusCreated, documento)
}

func GetDocuments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var documentos []models.Documento
	if err := db.Order("fecha_subida DESC").Find(&documentos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener la lista de documentos", "detalle": err.Error()})
		return
	}
	c.JSON(http.StatusOK, documentos)
}

func GetDocument(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var documento models.Documento
	if err := db.First(&documento, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Documento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, documento)
}

// MisDocumentos lista los documentos de un estudiante. Acepta el id por
// parámetro de ruta o por query string.
func MisDocumentos(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	raw := c.Param("estudianteId")
	if raw == "" {
		raw = c.Query("estudianteId")
	}
	estudianteID, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estudianteId inválido"})
		return
	}

	var documentos []models.Documento
	if err := db.Where("estudiante_id = ?", estudianteID).Order("fecha_subida DESC").Find(&documentos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener los documentos", "detalle": err.Error()})
		return
	}
	c.JSON(http.StatusOK, documentos)
}
