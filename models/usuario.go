package models

import "time"

type RolUsuario string

const (
	RolEstudiante RolUsuario = "ESTUDIANTE" // Alumno (crea perfil de estudiante)
	RolMaestro    RolUsuario = "MAESTRO"    // Docente
	RolAdmin      RolUsuario = "ADMIN"      // Administrador del sistema
)

type Usuario struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Nombre     string     `gorm:"size:150;not null" json:"nombre"`
	Correo     string     `gorm:"size:150;uniqueIndex;not null" json:"correo"`
	Contrasena string     `gorm:"type:text;not null" json:"-"`
	Rol        RolUsuario `gorm:"type:varchar(20);not null;default:'ESTUDIANTE'" json:"rol"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Perfil 1:1, solo para rol ESTUDIANTE
	Estudiante *Estudiante `json:"estudiante,omitempty"`
}
