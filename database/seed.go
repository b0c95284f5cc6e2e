package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"farmmate/entities"
)

// Seed loads the demo farm for uid when that user has no farms yet.
// today stamps the sample tasks so they show up on the current day.
// It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB, uid, today string) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&entities.Farm{}).Where("user_id = ?", uid).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count farms: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		farms := []entities.Farm{
			{UserID: uid, Name: "노지 농장", Environment: entities.EnvOpenField, RowCount: 45, Area: 20},
			{UserID: uid, Name: "시설농장 1", Environment: entities.EnvFacility1, RowCount: 20, Area: 10},
			{UserID: uid, Name: "시설농장 2", Environment: entities.EnvFacility2, RowCount: 10, Area: 10},
		}
		if err := tx.Create(&farms).Error; err != nil {
			return fmt.Errorf("seed farms: %w", err)
		}

		crops := []entities.Crop{
			{UserID: uid, FarmID: farms[0].ID, Category: "배추", Name: "콜라비", Variety: "그린", Status: entities.CropGrowing},
			{UserID: uid, FarmID: farms[1].ID, Category: "뿌리채소", Name: "당근", Variety: "퍼플", Status: entities.CropHarvesting},
			{UserID: uid, FarmID: farms[0].ID, Category: "뿌리채소", Name: "비트", Variety: "레드", Status: entities.CropCompleted},
			{UserID: uid, FarmID: farms[1].ID, Category: "배추", Name: "미니양배추", Variety: "티아라", Status: entities.CropGrowing},
		}
		if err := tx.Create(&crops).Error; err != nil {
			return fmt.Errorf("seed crops: %w", err)
		}

		tasks := []entities.Task{
			sampleTask(uid, crops[0], "파종", "이랑: 1번", today),
			sampleTask(uid, crops[2], "수확-선별", "이랑: 2번", today),
			sampleTask(uid, crops[1], "육묘", "이랑: 1번", today),
			sampleTask(uid, crops[3], "저장-포장", "이랑: 2번", today),
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func sampleTask(uid string, c entities.Crop, taskType, desc, date string) entities.Task {
	return entities.Task{
		UserID:        uid,
		FarmID:        c.FarmID,
		CropID:        c.ID,
		Title:         c.Name + " " + taskType,
		Description:   desc,
		TaskType:      taskType,
		ScheduledDate: date,
	}
}
