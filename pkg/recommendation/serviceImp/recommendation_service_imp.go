package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"farmmate/entities"
	"farmmate/pkg/apperr"
	repo "farmmate/pkg/recommendation/repository"
	"farmmate/pkg/recommendation/service"
)

type recSvc struct{ r repo.RecommendationRepository }

func NewRecommendationService(r repo.RecommendationRepository) service.RecommendationService {
	return &recSvc{r}
}

func (s *recSvc) List(ctx context.Context, uid string) ([]entities.Recommendation, error) {
	return s.r.ListByUser(ctx, uid)
}

// Create stores a recommendation for the requested environment and
// season. The suggested crops and scores are a fixed sample until a real
// model is plugged in.
func (s *recSvc) Create(ctx context.Context, uid string, in service.RecommendationInput) (*entities.Recommendation, error) {
	env, season := strings.TrimSpace(in.Environment), strings.TrimSpace(in.Season)
	if env == "" || season == "" {
		return nil, fmt.Errorf("%w: environment and season are required", apperr.ErrInvalid)
	}
	rec := sampleRecommendation()
	rec.UserID = uid
	rec.Environment = env
	rec.Season = season
	if err := s.r.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func sampleRecommendation() *entities.Recommendation {
	cost, revenue, labor, rarity := 250000, 600000, 20, 15
	profit := 16.6
	return &entities.Recommendation{
		RecommendedCrops: []entities.RecommendedCrop{
			{Name: "콩_완두 (슈가앤)", ExpectedYield: 30, ExpectedRevenue: 500000, SeedCost: 300000, NetProfit: 200000},
			{Name: "배추_콜라비 (그린)", ExpectedYield: 15, ExpectedRevenue: 250000, SeedCost: 170000, NetProfit: 80000},
		},
		ExpectedCost:       &cost,
		ExpectedRevenue:    &revenue,
		LaborScore:         &labor,
		ProfitabilityScore: &profit,
		RarityScore:        &rarity,
	}
}
