package handler_test

import (
	"context"
	"errors"
	"time"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
)

// --- Manual Mocks ---

// MockCatalogService
type MockCatalogService struct {
	ListQuizzesFunc      func(ctx context.Context) ([]dto.QuizSummaryResponse, error)
	GetQuizContentFunc   func(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error)
	CreateQuizFunc       func(ctx context.Context, quiz *domain.NewQuiz) (int64, error)
	UpdateQuizFunc       func(ctx context.Context, quizID int64, title, description string, isActive bool) error
	AddQuestionFunc      func(ctx context.Context, quizID int64, question *domain.NewQuestion) (int64, error)
	ReplaceQuestionFunc  func(ctx context.Context, quizID, questionID int64, question *domain.NewQuestion) error
	ReorderQuestionsFunc func(ctx context.Context, quizID int64, orders map[int64]int) error
	DeleteQuizFunc       func(ctx context.Context, quizID int64) error
}

func (m *MockCatalogService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryResponse, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx)
	}
	panic("MockCatalogService.ListQuizzesFunc not implemented")
}
func (m *MockCatalogService) GetQuizContent(ctx context.Context, quizID int64) (*dto.QuizContentResponse, error) {
	if m.GetQuizContentFunc != nil {
		return m.GetQuizContentFunc(ctx, quizID)
	}
	panic("MockCatalogService.GetQuizContentFunc not implemented")
}
func (m *MockCatalogService) CreateQuiz(ctx context.Context, quiz *domain.NewQuiz) (int64, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, quiz)
	}
	panic("MockCatalogService.CreateQuizFunc not implemented")
}
func (m *MockCatalogService) UpdateQuiz(ctx context.Context, quizID int64, title, description string, isActive bool) error {
	if m.UpdateQuizFunc != nil {
		return m.UpdateQuizFunc(ctx, quizID, title, description, isActive)
	}
	panic("MockCatalogService.UpdateQuizFunc not implemented")
}
func (m *MockCatalogService) AddQuestion(ctx context.Context, quizID int64, question *domain.NewQuestion) (int64, error) {
	if m.AddQuestionFunc != nil {
		return m.AddQuestionFunc(ctx, quizID, question)
	}
	panic("MockCatalogService.AddQuestionFunc not implemented")
}
func (m *MockCatalogService) ReplaceQuestion(ctx context.Context, quizID, questionID int64, question *domain.NewQuestion) error {
	if m.ReplaceQuestionFunc != nil {
		return m.ReplaceQuestionFunc(ctx, quizID, questionID, question)
	}
	panic("MockCatalogService.ReplaceQuestionFunc not implemented")
}
func (m *MockCatalogService) ReorderQuestions(ctx context.Context, quizID int64, orders map[int64]int) error {
	if m.ReorderQuestionsFunc != nil {
		return m.ReorderQuestionsFunc(ctx, quizID, orders)
	}
	panic("MockCatalogService.ReorderQuestionsFunc not implemented")
}
func (m *MockCatalogService) DeleteQuiz(ctx context.Context, quizID int64) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, quizID)
	}
	panic("MockCatalogService.DeleteQuizFunc not implemented")
}

// MockGradingService
type MockGradingService struct {
	SubmitFunc func(ctx context.Context, userID string, quizID int64, sub domain.Submission) (*dto.SubmissionResponse, error)
}

func (m *MockGradingService) Submit(ctx context.Context, userID string, quizID int64, sub domain.Submission) (*dto.SubmissionResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, userID, quizID, sub)
	}
	panic("MockGradingService.SubmitFunc not implemented")
}

// MockResultService
type MockResultService struct {
	ListResultsFunc  func(ctx context.Context, userID string, quizID int64) ([]dto.ResultSummaryResponse, error)
	LatestResultFunc func(ctx context.Context, userID string, quizID int64) (*dto.ResultDetailResponse, error)
	ResultByIDFunc   func(ctx context.Context, userID string, resultID string) (*dto.ResultDetailResponse, error)
}

func (m *MockResultService) ListResults(ctx context.Context, userID string, quizID int64) ([]dto.ResultSummaryResponse, error) {
	if m.ListResultsFunc != nil {
		return m.ListResultsFunc(ctx, userID, quizID)
	}
	panic("MockResultService.ListResultsFunc not implemented")
}
func (m *MockResultService) LatestResult(ctx context.Context, userID string, quizID int64) (*dto.ResultDetailResponse, error) {
	if m.LatestResultFunc != nil {
		return m.LatestResultFunc(ctx, userID, quizID)
	}
	panic("MockResultService.LatestResultFunc not implemented")
}
func (m *MockResultService) ResultByID(ctx context.Context, userID string, resultID string) (*dto.ResultDetailResponse, error) {
	if m.ResultByIDFunc != nil {
		return m.ResultByIDFunc(ctx, userID, resultID)
	}
	panic("MockResultService.ResultByIDFunc not implemented")
}

// MockTokenService accepts "<role>:<userID>" as a token.
type MockTokenService struct{}

func (m *MockTokenService) CreateJWT(userID, role string, ttl time.Duration) (string, error) {
	return role + ":" + userID, nil
}

func (m *MockTokenService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	for _, role := range []string{domain.RoleUser, domain.RoleAdmin} {
		prefix := role + ":"
		if len(tokenString) > len(prefix) && tokenString[:len(prefix)] == prefix {
			return &dto.AuthClaims{UserID: tokenString[len(prefix):], Role: role}, nil
		}
	}
	return nil, errors.New("invalid jwt token")
}
