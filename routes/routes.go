package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/controllers"
	"github.com/brunogonzalezj/studymate-backend/middleware"
	"github.com/brunogonzalezj/studymate-backend/services"
	"github.com/brunogonzalezj/studymate-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, llm services.TextGenerator) *gin.Engine {
	r.Use(middleware.DBMiddleware(db), middleware.LLMMiddleware(llm))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	users := api.Group("/users")
	{
		users.POST("/register", controllers.Register)
		users.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	documents := api.Group("/documents")
	{
		documents.POST("/upload", controllers.UploadDocument)
		documents.POST("/generate-summary", controllers.GenerateSummary)
		documents.GET("", controllers.GetDocuments)
		documents.GET("/mis-documentos", controllers.MisDocumentos)
		documents.GET("/mis-documentos/:estudianteId", controllers.MisDocumentos)
		documents.GET("/flashcards/:documentoId", controllers.GetFlashcardsPorDocumento)
		documents.GET("/mis-flashcards/:estudianteId", controllers.GetFlashcardsPorEstudiante)
		documents.GET("/resumen/:documentoId", controllers.GetResumenPorDocumento)
		// Esta va al final para no capturar las rutas anteriores
		documents.GET("/:id", controllers.GetDocument)
	}

	r.GET("/ws/status", ws.HandleStatusWebSocket)

	return r
}
