package analytics

import (
	"context"
	"medirecord-service/internal/app/services/patients"
	"medirecord-service/internal/app/services/shared/redis"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/dto/responses"
	"medirecord-service/internal/pkg/queries"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type analyticsUsecase struct {
	PatientRepository patients.PatientRepository
	RedisRepository   redis.RedisRepository
	CacheTTL          time.Duration
	Log               *zap.Logger
}

func NewAnalyticsUsecase(
	patientMongoRepository patients.PatientRepository,
	redisRepository redis.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) AnalyticsUsecase {
	return &analyticsUsecase{
		PatientRepository: patientMongoRepository,
		RedisRepository:   redisRepository,
		CacheTTL:          cacheTTL,
		Log:               logger,
	}
}

func (uc *analyticsUsecase) ConditionCounts(ctx context.Context) ([]responses.ConditionCount, error) {
	var cached []responses.ConditionCount
	if uc.readCache(ctx, constvars.RedisKeyConditionCounts, &cached) {
		return cached, nil
	}

	rows, err := uc.PatientRepository.Aggregate(ctx, queries.ConditionCountPipeline())
	if err != nil {
		return nil, err
	}

	result := make([]responses.ConditionCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, responses.ConditionCount{
			Condition: rowString(row, "condition"),
			Count:     rowInt64(row, "count"),
		})
	}

	uc.writeCache(ctx, constvars.RedisKeyConditionCounts, result)
	return result, nil
}

func (uc *analyticsUsecase) GenderCounts(ctx context.Context) ([]responses.GenderCount, error) {
	var cached []responses.GenderCount
	if uc.readCache(ctx, constvars.RedisKeyGenderCounts, &cached) {
		return cached, nil
	}

	rows, err := uc.PatientRepository.Aggregate(ctx, queries.GenderCountPipeline())
	if err != nil {
		return nil, err
	}

	result := make([]responses.GenderCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, responses.GenderCount{
			Gender: rowString(row, "gender"),
			Count:  rowInt64(row, "count"),
		})
	}

	uc.writeCache(ctx, constvars.RedisKeyGenderCounts, result)
	return result, nil
}

// readCache reports whether dest was filled from the cache. Cache failures
// only cost a recompute, never the request.
func (uc *analyticsUsecase) readCache(ctx context.Context, key string, dest interface{}) bool {
	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if cached == "" {
		return false
	}
	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		uc.Log.Warn("analytics cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (uc *analyticsUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	if err := uc.RedisRepository.Set(ctx, key, value, uc.CacheTTL); err != nil {
		uc.Log.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func rowString(row bson.M, key string) string {
	if value, ok := row[key].(string); ok {
		return value
	}
	return ""
}

func rowInt64(row bson.M, key string) int64 {
	switch value := row[key].(type) {
	case int32:
		return int64(value)
	case int64:
		return value
	case float64:
		return int64(value)
	case int:
		return int64(value)
	}
	return 0
}
