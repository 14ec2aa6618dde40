package service

import (
	"context"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/metrics"

	"go.uber.org/zap"
)

// GradingService grades submissions and records them.
type GradingService interface {
	Submit(ctx context.Context, userID string, quizID int64, sub domain.Submission) (*dto.SubmissionResponse, error)
}

type gradingService struct {
	catalog domain.CatalogRepository
	store   *ResultStore
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewGradingService creates a new instance of gradingService
func NewGradingService(catalog domain.CatalogRepository, store *ResultStore, m *metrics.Metrics, logger *zap.Logger) GradingService {
	return &gradingService{
		catalog: catalog,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// Submit grades sub against the quiz's current answer key and saves the
// outcome. The key is loaded on every call so edits apply immediately.
func (s *gradingService) Submit(ctx context.Context, userID string, quizID int64, sub domain.Submission) (*dto.SubmissionResponse, error) {
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, asStorageError(err, "failed to load quiz")
	}
	if !quiz.IsActive {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	key, err := s.catalog.GetAnswerKey(ctx, quizID)
	if err != nil {
		return nil, asStorageError(err, fmt.Sprintf("failed to load answer key for quiz %d", quizID))
	}

	outcome := domain.Grade(key, sub)

	result, err := s.store.Save(ctx, outcome, userID, quizID)
	if err != nil {
		s.metrics.Submissions.WithLabelValues(metrics.SubmissionFailed).Inc()
		return nil, err
	}

	s.metrics.Submissions.WithLabelValues(metrics.SubmissionGraded).Inc()
	s.metrics.Scores.Observe(result.Score)
	s.logger.Info("Quiz submission graded",
		zap.String("result_id", result.ID),
		zap.String("user_id", userID),
		zap.Int64("quiz_id", quizID),
		zap.Int("correct", outcome.CorrectCount),
		zap.Int("total", outcome.TotalQuestions),
		zap.Float64("score", result.Score))

	return dto.ToSubmissionResponse(result, outcome), nil
}
