package models

import "time"

type Estudiante struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UsuarioID      uint      `gorm:"uniqueIndex;not null" json:"usuarioId"`
	NivelAcademico string    `gorm:"size:100" json:"nivelAcademico"`
	Disponibilidad string    `gorm:"type:text" json:"disponibilidad"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Documentos []Documento `json:"documentos,omitempty"`
}
