package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Farm environments offered by the client.
const (
	EnvOpenField = "노지"
	EnvFacility1 = "시설1"
	EnvFacility2 = "시설2"
)

type Farm struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index" json:"userId"`
	Name        string    `json:"name"`
	Environment string    `json:"environment"`
	RowCount    int       `json:"rowCount"`
	Area        int       `json:"area"` // m²
	CreatedAt   time.Time `json:"createdAt"`
}

func (f *Farm) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
