package models

import "time"

type Documento struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Titulo       string    `gorm:"size:255;not null" json:"titulo"`
	Contenido    string    `gorm:"type:text" json:"contenido"` // texto extraído, inmutable tras la subida
	Materia      string    `gorm:"size:150" json:"materia"`
	Tema         string    `gorm:"size:150" json:"tema"`
	Formato      string    `gorm:"size:20;not null;default:'PDF'" json:"formato"`
	EstudianteID uint      `gorm:"index;not null" json:"estudianteId"`
	FechaSubida  time.Time `gorm:"autoCreateTime" json:"fechaSubida"`

	Resumenes  []Resumen   `gorm:"constraint:OnDelete:CASCADE" json:"resumenes,omitempty"`
	Flashcards []Flashcard `gorm:"constraint:OnDelete:CASCADE" json:"flashcards,omitempty"`
}
