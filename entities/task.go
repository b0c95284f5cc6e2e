package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	UserID        string     `gorm:"index" json:"userId"`
	FarmID        string     `gorm:"index" json:"farmId"`
	CropID        string     `gorm:"index" json:"cropId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	TaskType      string     `json:"taskType"`                           // 파종, 육묘, 수확-선별 ...
	ScheduledDate string     `gorm:"index" json:"scheduledDate"`         // YYYY-MM-DD
	EndDate       *string    `json:"endDate"`                            // YYYY-MM-DD
	Completed     int        `gorm:"not null;default:0" json:"completed"` // 0|1
	CompletedAt   *time.Time `json:"completedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
