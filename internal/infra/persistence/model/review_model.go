package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReviewModel mirrors the 'resenas' table.
// Rows are ordered by id; UUIDv7 keeps that equal to insertion order.
type ReviewModel struct {
	ID                    uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	NombreEstablecimiento string                      `gorm:"type:varchar(200);not null"`
	Direccion             string                      `gorm:"type:varchar(300);not null"`
	Latitud               float64                     `gorm:"type:double precision;not null"`
	Longitud              float64                     `gorm:"type:double precision;not null"`
	Valoracion            float64                     `gorm:"type:double precision;not null"`
	EmailAutor            string                      `gorm:"type:varchar(255);not null;index"`
	NombreAutor           string                      `gorm:"type:varchar(255);not null"`
	TokenOAuth            string                      `gorm:"column:token_oauth;type:text;not null"`
	TokenEmision          time.Time                   `gorm:"not null"`
	TokenCaducidad        time.Time                   `gorm:"not null"`
	Imagenes              datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt             time.Time                   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "resenas"
}
