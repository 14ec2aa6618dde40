package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizmaster/internal/cache"
	"quizmaster/internal/domain"
	"quizmaster/internal/metrics"

	"go.uber.org/zap"
)

// ErrLatestResultNotCached is returned when no latest result is cached for a user and quiz.
var ErrLatestResultNotCached = errors.New("latest result not found in cache")

// LatestResultCache caches the most recent stored attempt of a user on a quiz.
// Only result rows are cached; answer keys are always read fresh.
type LatestResultCache interface {
	Get(ctx context.Context, userID string, quizID int64) (*domain.QuizResult, error)
	// Put caches result unless a more recent attempt is already cached, so a
	// slow reader can never replace what a later save wrote.
	Put(ctx context.Context, result *domain.QuizResult) error
	Invalidate(ctx context.Context, userID string, quizID int64) error
}

// resultVersion sorts like the store's listing order: completed_at, then id.
func resultVersion(result *domain.QuizResult) string {
	return result.CompletedAt.UTC().Format("20060102T150405.000000000Z") + result.ID
}

type cachedResult struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	QuizID      int64     `json:"quiz_id"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
	Details     string    `json:"details"`
}

type latestResultCacheImpl struct {
	cache   domain.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewLatestResultCache creates a LatestResultCache over a generic cache.
// A nil cache yields a no-op implementation.
func NewLatestResultCache(c domain.Cache, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) LatestResultCache {
	if c == nil {
		logger.Warn("LatestResultCache initialized with nil cache. Service will be no-op.")
		return &noopLatestResultCache{}
	}
	return &latestResultCacheImpl{cache: c, ttl: ttl, metrics: m, logger: logger}
}

func (s *latestResultCacheImpl) Get(ctx context.Context, userID string, quizID int64) (*domain.QuizResult, error) {
	key := cache.LatestResultKey(userID, quizID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			s.metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
			return nil, ErrLatestResultNotCached
		}
		s.metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get latest result from cache for key %s", key), err)
	}
	if data == "" {
		s.metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, ErrLatestResultNotCached
	}

	var cached cachedResult
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		s.metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal latest result from cache for key %s", key), err)
	}
	s.metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	s.logger.Debug("Latest result cache hit", zap.String("key", key))
	return &domain.QuizResult{
		ID:          cached.ID,
		UserID:      cached.UserID,
		QuizID:      cached.QuizID,
		Score:       cached.Score,
		CompletedAt: cached.CompletedAt,
		Details:     cached.Details,
	}, nil
}

func (s *latestResultCacheImpl) Put(ctx context.Context, result *domain.QuizResult) error {
	if result == nil {
		return domain.NewValidationError("cannot cache nil result")
	}
	key := cache.LatestResultKey(result.UserID, result.QuizID)
	data, err := json.Marshal(cachedResult{
		ID:          result.ID,
		UserID:      result.UserID,
		QuizID:      result.QuizID,
		Score:       result.Score,
		CompletedAt: result.CompletedAt,
		Details:     result.Details,
	})
	if err != nil {
		return domain.NewInternalError("failed to marshal latest result for caching", err)
	}
	stored, err := s.cache.SetIfNewer(ctx, key, resultVersion(result), string(data), s.ttl)
	if err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set latest result to cache for key %s", key), err)
	}
	if !stored {
		s.logger.Debug("Newer result already cached", zap.String("key", key), zap.String("result_id", result.ID))
	}
	return nil
}

func (s *latestResultCacheImpl) Invalidate(ctx context.Context, userID string, quizID int64) error {
	key := cache.LatestResultKey(userID, quizID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete latest result from cache for key %s", key), err)
	}
	return nil
}

type noopLatestResultCache struct{}

func (noopLatestResultCache) Get(ctx context.Context, userID string, quizID int64) (*domain.QuizResult, error) {
	return nil, ErrLatestResultNotCached
}

func (noopLatestResultCache) Put(ctx context.Context, result *domain.QuizResult) error {
	return nil
}

func (noopLatestResultCache) Invalidate(ctx context.Context, userID string, quizID int64) error {
	return nil
}
