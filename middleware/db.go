package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/services"
)

// DBMiddleware inyecta el handle de base de datos en el contexto de cada
// request, para que los tests puedan sustituirlo por una base en memoria.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

// LLMMiddleware inyecta el generador de texto (Gemini en producción,
// un stub en tests).
func LLMMiddleware(gen services.TextGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("llm", gen)
		c.Next()
	}
}
