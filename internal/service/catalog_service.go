package service

import (
	"context"
	"strings"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"

	"go.uber.org/zap"
)

// CatalogRepository is the full catalog storage: the read port used by
// grading plus the authoring operations.
type CatalogRepository interface {
	domain.CatalogRepository
	domain.CatalogAuthoringRepository
}

// CatalogService lists quizzes for takers and manages them for admins.
type CatalogService interface {
	ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error)
	GetQuizContent(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error)

	CreateQuiz(ctx context.Context, quiz *domain.NewQuiz) (int64, error)
	UpdateQuiz(ctx context.Context, quizID int64, title, description string, isActive bool) error
	AddQuestion(ctx context.Context, quizID int64, question *domain.NewQuestion) (int64, error)
	ReplaceQuestion(ctx context.Context, quizID, questionID int64, question *domain.NewQuestion) error
	ReorderQuestions(ctx context.Context, quizID int64, orders map[int64]int) error
	DeleteQuiz(ctx context.Context, quizID int64) error
}

type catalogService struct {
	repo   CatalogRepository
	tx     domain.TransactionManager
	logger *zap.Logger
}

func NewCatalogService(repo CatalogRepository, tx domain.TransactionManager, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, tx: tx, logger: logger}
}

func (s *catalogService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.repo.ListQuizzes(ctx, true)
	if err != nil {
		return nil, asStorageError(err, "failed to list quizzes")
	}
	out := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, dto.ToQuizSummaryResponse(q))
	}
	return out, nil
}

// GetQuizContent returns an active quiz with its questions in order.
func (s *catalogService) GetQuizContent(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
	quiz, err := s.repo.GetQuizContent(ctx, quizID)
	if err != nil {
		return nil, asStorageError(err, "failed to load quiz")
	}
	if !quiz.IsActive {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return dto.ToQuizContentResponse(quiz), nil
}

func (s *catalogService) CreateQuiz(ctx context.Context, quiz *domain.NewQuiz) (int64, error) {
	if err := quiz.Validate(); err != nil {
		return 0, err
	}
	var quizID int64
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.repo.CreateQuiz(txCtx, quiz)
		quizID = id
		return err
	})
	if err != nil {
		return 0, asStorageError(err, "failed to create quiz")
	}
	s.logger.Info("Quiz created", zap.Int64("quiz_id", quizID), zap.Int("questions", len(quiz.Questions)))
	return quizID, nil
}

func (s *catalogService) UpdateQuiz(ctx context.Context, quizID int64, title, description string, isActive bool) error {
	if strings.TrimSpace(title) == "" {
		return domain.NewValidationError("title is required")
	}
	if err := s.repo.UpdateQuizDetails(ctx, quizID, title, description, isActive); err != nil {
		return asStorageError(err, "failed to update quiz")
	}
	return nil
}

// AddQuestion appends question after the quiz's current last question.
func (s *catalogService) AddQuestion(ctx context.Context, quizID int64, question *domain.NewQuestion) (int64, error) {
	if err := question.Validate(); err != nil {
		return 0, err
	}
	var questionID int64
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.repo.AddQuestion(txCtx, quizID, question)
		questionID = id
		return err
	})
	if err != nil {
		return 0, asStorageError(err, "failed to add question")
	}
	return questionID, nil
}

// ReplaceQuestion rewrites a question's text and answers. The answers get new
// ids, so earlier results referencing the old ones show placeholders.
func (s *catalogService) ReplaceQuestion(ctx context.Context, quizID, questionID int64, question *domain.NewQuestion) error {
	if err := question.Validate(); err != nil {
		return err
	}
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.ReplaceQuestion(txCtx, quizID, questionID, question)
	})
	if err != nil {
		return asStorageError(err, "failed to replace question")
	}
	return nil
}

func (s *catalogService) ReorderQuestions(ctx context.Context, quizID int64, orders map[int64]int) error {
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetQuiz(txCtx, quizID); err != nil {
			return err
		}
		existing, err := s.repo.QuestionIDs(txCtx, quizID)
		if err != nil {
			return err
		}
		if err := domain.ValidateQuestionOrder(existing, orders); err != nil {
			return err
		}
		return s.repo.SetQuestionOrders(txCtx, quizID, orders)
	})
	if err != nil {
		return asStorageError(err, "failed to reorder questions")
	}
	return nil
}

// DeleteQuiz removes the quiz together with its questions, answers and results.
func (s *catalogService) DeleteQuiz(ctx context.Context, quizID int64) error {
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteQuiz(txCtx, quizID)
	})
	if err != nil {
		return asStorageError(err, "failed to delete quiz")
	}
	s.logger.Info("Quiz deleted", zap.Int64("quiz_id", quizID))
	return nil
}
