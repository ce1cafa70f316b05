package models

import "time"

// Resumen es uno-a-muchos con Documento: cada generación agrega una fila.
type Resumen struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Contenido   string    `gorm:"type:text;not null" json:"contenido"`
	Calidad     int       `gorm:"not null" json:"calidad"`
	DocumentoID uint      `gorm:"index;not null" json:"documentoId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
