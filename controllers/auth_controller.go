package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/models"
	"github.com/brunogonzalezj/studymate-backend/utils"
)

type LoginInput struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}

func Login(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := db.Preload("Estudiante").Where("correo = ?", input.Correo).First(&usuario).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(input.Contrasena)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Contraseña incorrecta"})
		return
	}

	token, err := utils.GenerateToken(usuario.ID, string(usuario.Rol))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el token", "detalle": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Login exitoso",
		"usuario": usuario,
		"token":   token,
	})
}
