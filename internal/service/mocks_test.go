package service

import (
	"context"
	"time"

	"quizmaster/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetQuiz(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockCatalogRepository) GetQuizContent(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockCatalogRepository) ListQuizzes(ctx context.Context, activeOnly bool) ([]*domain.Quiz, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockCatalogRepository) GetAnswerKey(ctx context.Context, quizID int64) (*domain.AnswerKey, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnswerKey), args.Error(1)
}

func (m *MockCatalogRepository) QuestionTexts(ctx context.Context, ids []int64) (map[int64]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *MockCatalogRepository) AnswerTexts(ctx context.Context, ids []int64) (map[int64]domain.AnswerText, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.AnswerText), args.Error(1)
}

func (m *MockCatalogRepository) CreateQuiz(ctx context.Context, quiz *domain.NewQuiz) (int64, error) {
	args := m.Called(ctx, quiz)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) UpdateQuizDetails(ctx context.Context, quizID int64, title, description string, isActive bool) error {
	args := m.Called(ctx, quizID, title, description, isActive)
	return args.Error(0)
}

func (m *MockCatalogRepository) AddQuestion(ctx context.Context, quizID int64, question *domain.NewQuestion) (int64, error) {
	args := m.Called(ctx, quizID, question)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ReplaceQuestion(ctx context.Context, quizID, questionID int64, question *domain.NewQuestion) error {
	args := m.Called(ctx, quizID, questionID, question)
	return args.Error(0)
}

func (m *MockCatalogRepository) QuestionIDs(ctx context.Context, quizID int64) ([]int64, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogRepository) SetQuestionOrders(ctx context.Context, quizID int64, orders map[int64]int) error {
	args := m.Called(ctx, quizID, orders)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteQuiz(ctx context.Context, quizID int64) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

// --- MockResultRepository ---
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) ListFor(ctx context.Context, userID string, quizID int64) ([]*domain.QuizResult, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizResult), args.Error(1)
}

func (m *MockResultRepository) GetByID(ctx context.Context, resultID string) (*domain.QuizResult, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizResult), args.Error(1)
}

// --- MockTransactionManager ---
// Runs fn directly; the returned error is fn's unless CommitErr is set.
type MockTransactionManager struct {
	Calls     int
	CommitErr error
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.CommitErr
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) SetIfNewer(ctx context.Context, key, version, value string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, version, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
