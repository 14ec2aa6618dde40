package service

import (
	"context"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"

	"go.uber.org/zap"
)

// ResultService exposes a user's stored attempts, rehydrated for display.
type ResultService interface {
	ListResults(ctx context.Context, userID string, quizID int64) ([]dto.ResultSummaryResponse, error)
	LatestResult(ctx context.Context, userID string, quizID int64) (*dto.ResultDetailResponse, error)
	ResultByID(ctx context.Context, userID string, resultID string) (*dto.ResultDetailResponse, error)
}

type resultService struct {
	catalog    domain.CatalogRepository
	store      *ResultStore
	rehydrator *Rehydrator
	logger     *zap.Logger
}

func NewResultService(catalog domain.CatalogRepository, store *ResultStore, rehydrator *Rehydrator, logger *zap.Logger) ResultService {
	return &resultService{
		catalog:    catalog,
		store:      store,
		rehydrator: rehydrator,
		logger:     logger,
	}
}

func (s *resultService) ListResults(ctx context.Context, userID string, quizID int64) ([]dto.ResultSummaryResponse, error) {
	if err := s.requireQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	results, err := s.store.ListFor(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return dto.ToResultSummaryResponses(results), nil
}

// LatestResult returns the most recent attempt. When attempts share a
// completion time the later id wins.
func (s *resultService) LatestResult(ctx context.Context, userID string, quizID int64) (*dto.ResultDetailResponse, error) {
	if err := s.requireQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	result, err := s.store.Latest(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, result)
}

// ResultByID returns one attempt. Another user's result reads as not found.
func (s *resultService) ResultByID(ctx context.Context, userID string, resultID string) (*dto.ResultDetailResponse, error) {
	result, err := s.store.GetByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.UserID != userID {
		return nil, domain.NewResultNotFoundError(fmt.Sprintf("quiz result not found with ID: %s", resultID)).
			WithContext("result_id", resultID)
	}
	return s.render(ctx, result)
}

func (s *resultService) requireQuiz(ctx context.Context, quizID int64) error {
	if _, err := s.catalog.GetQuiz(ctx, quizID); err != nil {
		return asStorageError(err, "failed to load quiz")
	}
	return nil
}

// render rehydrates result. Corrupt details still produce a response, carrying a warning.
func (s *resultService) render(ctx context.Context, result *domain.QuizResult) (*dto.ResultDetailResponse, error) {
	view, err := s.rehydrator.Rehydrate(ctx, result)
	if err != nil {
		if !domain.IsCode(err, domain.CodeCorruptData) || view == nil {
			return nil, err
		}
		s.logger.Warn("Serving degraded quiz result", zap.String("result_id", result.ID))
	}
	return dto.ToResultDetailResponse(view), nil
}
