package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizmaster/internal/domain"
	"quizmaster/internal/util"

	"go.uber.org/zap"
)

// ResultStore persists graded outcomes and reads them back. Rows are
// append-only: there is no update path.
type ResultStore struct {
	repo   domain.ResultRepository
	tx     domain.TransactionManager
	latest LatestResultCache
	logger *zap.Logger
	now    func() time.Time
}

// NewResultStore creates a ResultStore. latest may be nil.
func NewResultStore(repo domain.ResultRepository, tx domain.TransactionManager, latest LatestResultCache, logger *zap.Logger) *ResultStore {
	if latest == nil {
		latest = noopLatestResultCache{}
	}
	return &ResultStore{
		repo:   repo,
		tx:     tx,
		latest: latest,
		logger: logger,
		now:    time.Now,
	}
}

// Save records one attempt. The result is stamped with the current UTC time
// and a fresh time-ordered id. Any failure is a StorageError and nothing is
// reported as saved.
func (s *ResultStore) Save(ctx context.Context, outcome *domain.GradedOutcome, userID string, quizID int64) (*domain.QuizResult, error) {
	details, err := domain.EncodeOutcome(outcome)
	if err != nil {
		return nil, domain.NewStorageError("failed to encode graded outcome", err)
	}

	completedAt := s.now().UTC()
	result := &domain.QuizResult{
		ID:          util.NewULIDAt(completedAt),
		UserID:      userID,
		QuizID:      quizID,
		Score:       outcome.Score(),
		CompletedAt: completedAt,
		Details:     details,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, result)
	})
	if err != nil {
		s.logger.Error("Failed to save quiz result",
			zap.String("user_id", userID),
			zap.Int64("quiz_id", quizID),
			zap.Error(err))
		return nil, domain.NewStorageError("failed to save quiz result", err)
	}

	if err := s.latest.Put(ctx, result); err != nil {
		s.logger.Warn("Failed to cache saved result", zap.Error(err))
		if err := s.latest.Invalidate(ctx, userID, quizID); err != nil {
			s.logger.Warn("Failed to invalidate latest result cache", zap.Error(err))
		}
	}
	return result, nil
}

// ListFor returns every attempt of userID on quizID, most recent first.
func (s *ResultStore) ListFor(ctx context.Context, userID string, quizID int64) ([]*domain.QuizResult, error) {
	results, err := s.repo.ListFor(ctx, userID, quizID)
	if err != nil {
		return nil, asStorageError(err, "failed to list quiz results")
	}
	return results, nil
}

// Latest returns the most recent attempt, or NOT_FOUND when there is none.
func (s *ResultStore) Latest(ctx context.Context, userID string, quizID int64) (*domain.QuizResult, error) {
	cached, err := s.latest.Get(ctx, userID, quizID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrLatestResultNotCached) {
		s.logger.Warn("Latest result cache lookup failed", zap.Error(err))
	}

	results, err := s.ListFor(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, domain.NewResultNotFoundError(fmt.Sprintf("no results for quiz %d", quizID)).
			WithContext("quiz_id", quizID)
	}

	latest := results[0]
	// A save that committed after ListFor has already cached a newer version; Put leaves it alone.
	if err := s.latest.Put(ctx, latest); err != nil {
		s.logger.Warn("Failed to cache latest result", zap.Error(err))
	}
	return latest, nil
}

// GetByID returns one attempt, or NOT_FOUND.
func (s *ResultStore) GetByID(ctx context.Context, resultID string) (*domain.QuizResult, error) {
	result, err := s.repo.GetByID(ctx, resultID)
	if err != nil {
		return nil, asStorageError(err, "failed to get quiz result")
	}
	return result, nil
}

// asStorageError passes DomainErrors through and wraps anything else.
func asStorageError(err error, message string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewStorageError(message, err)
}
