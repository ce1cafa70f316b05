package models

import "time"

type Flashcard struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Pregunta    string    `gorm:"type:text;not null" json:"pregunta"`
	Respuesta   string    `gorm:"type:text;not null" json:"respuesta"`
	DocumentoID uint      `gorm:"index;not null" json:"documentoId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
