package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/models"
)

type RegisterInput struct {
	Nombre     string `json:"nombre" binding:"required"`
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
	Rol        string `json:"rol"`
}

func Register(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre, correo y contraseña son campos requeridos", "detalle": err.Error()})
		return
	}

	// Rol por defecto: ESTUDIANTE
	rol := models.RolUsuario(input.Rol)
	if rol == "" {
		rol = models.RolEstudiante
	}
	if rol != models.RolEstudiante && rol != models.RolMaestro && rol != models.RolAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rol inválido"})
		return
	}

	var existente models.Usuario
	if err := db.Where("correo = ?", input.Correo).First(&existente).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un usuario con este correo electrónico"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo encriptar la contraseña"})
		return
	}

	nuevoUsuario := models.Usuario{
		Nombre:     input.Nombre,
		Correo:     input.Correo,
		Contrasena: string(hashed),
		Rol:        rol,
	}

	// Usuario y perfil de estudiante se crean en la misma transacción
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&nuevoUsuario).Error; err != nil {
			return err
		}
		if rol == models.RolEstudiante {
			perfil := models.Estudiante{UsuarioID: nuevoUsuario.ID}
			if err := tx.Create(&perfil).Error; err != nil {
				return err
			}
			nuevoUsuario.Estudiante = &perfil
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el usuario", "detalle": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, nuevoUsuario)
}

// Me devuelve el usuario autenticado con su perfil de estudiante.
func Me(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetUint("user_id")

	var usuario models.Usuario
	if err := db.Preload("Estudiante").First(&usuario, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, usuario)
}
