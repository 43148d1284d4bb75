package analytics

import (
	"context"
	"medirecord-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	ConditionCounts(ctx context.Context) ([]responses.ConditionCount, error)
	GenderCounts(ctx context.Context) ([]responses.GenderCount, error)
}
