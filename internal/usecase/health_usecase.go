package usecase

import (
	"context"
	"time"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

// Component states reported by HealthUsecase.Check
const (
	HealthOK          = "ok"
	HealthUnavailable = "unavailable"
	HealthDisabled    = "disabled"
)

type HealthUsecase interface {
	// Check probes the record store and the cache. The "status" key is
	// HealthOK only when the record store answers.
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	store domain.RecordStore
	redis *goredis.Client
}

// NewHealthUsecase probes store and, when non-nil, redis
func NewHealthUsecase(store domain.RecordStore, redis *goredis.Client) HealthUsecase {
	return &healthUsecase{store: store, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	result := map[string]string{
		"status": HealthOK,
		"store":  HealthOK,
		"cache":  HealthDisabled,
	}

	if _, err := u.store.ReadTable(ctx, domain.TableClients); err != nil {
		logger.Log.Error("Health check: record store unavailable", "error", err)
		result["store"] = HealthUnavailable
		result["status"] = HealthUnavailable
	}

	if u.redis != nil {
		result["cache"] = HealthOK
		if err := u.redis.Ping(ctx).Err(); err != nil {
			logger.Log.Warn("Health check: cache unavailable", "error", err)
			result["cache"] = HealthUnavailable
		}
	}
	return result
}
