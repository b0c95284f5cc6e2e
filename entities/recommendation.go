package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recommendation struct {
	ID                 string            `gorm:"primaryKey" json:"id"`
	UserID             string            `gorm:"index" json:"userId"`
	Environment        string            `json:"environment"`
	Season             string            `json:"season"`
	RecommendedCrops   []RecommendedCrop `gorm:"serializer:json" json:"recommendedCrops"`
	ExpectedCost       *int              `json:"expectedCost"`
	ExpectedRevenue    *int              `json:"expectedRevenue"`
	LaborScore         *int              `json:"laborScore"`
	ProfitabilityScore *float64          `json:"profitabilityScore"`
	RarityScore        *int              `json:"rarityScore"`
	CreatedAt          time.Time         `json:"createdAt"`
}

type RecommendedCrop struct {
	Name            string `json:"name"`
	ExpectedYield   int    `json:"expectedYield"`
	ExpectedRevenue int    `json:"expectedRevenue"`
	SeedCost        int    `json:"seedCost"`
	NetProfit       int    `json:"netProfit"`
}

func (r *Recommendation) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
