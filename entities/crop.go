package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CropGrowing    = "growing"
	CropHarvesting = "harvesting"
	CropCompleted  = "completed"
)

type Crop struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"userId"`
	FarmID    string    `gorm:"index" json:"farmId"`
	Category  string    `json:"category"` // 배추, 뿌리채소 ...
	Name      string    `json:"name"`     // 콜라비, 당근 ...
	Variety   string    `json:"variety"`  // 그린, 퍼플 ...
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Crop) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func ValidCropStatus(s string) bool {
	switch s {
	case CropGrowing, CropHarvesting, CropCompleted:
		return true
	}
	return false
}
