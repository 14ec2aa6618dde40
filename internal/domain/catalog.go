package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Quiz is an authored multiple-choice quiz.
type Quiz struct {
	ID          int64
	Title       string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	Questions   []*Question
}

// Question belongs to a quiz; Order defines its presentation sequence.
type Question struct {
	ID      int64
	QuizID  int64
	Text    string
	Order   int
	Answers []*Answer
}

// Answer is one selectable option of a question.
type Answer struct {
	ID         int64
	QuestionID int64
	Text       string
	IsCorrect  bool
	Order      int
}

// NewQuiz is the authoring input for a quiz with its full question set.
type NewQuiz struct {
	Title       string
	Description string
	Questions   []NewQuestion
}

// NewQuestion is the authoring input for one question. Orders are assigned
// from the slice position when persisted.
type NewQuestion struct {
	Text    string
	Answers []NewAnswer
}

// NewAnswer is the authoring input for one answer option.
type NewAnswer struct {
	Text      string
	IsCorrect bool
}

// Validate validates the quiz
func (q *NewQuiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return NewValidationError("title is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the question
func (q *NewQuestion) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("question text is required")
	}
	for _, a := range q.Answers {
		if strings.TrimSpace(a.Text) == "" {
			return NewValidationError("answer text is required")
		}
	}
	return nil
}

// KeyedQuestion is one question of an answer key: the question id and its
// answers in presentation order, each tagged with correctness.
type KeyedQuestion struct {
	QuestionID int64
	Answers    []KeyedAnswer
}

// KeyedAnswer is an (answer id, is_correct) pair.
type KeyedAnswer struct {
	AnswerID  int64
	IsCorrect bool
}

// CorrectIDs returns the canonical correct answer ids in presentation order.
// The result is never nil.
func (q KeyedQuestion) CorrectIDs() []int64 {
	ids := make([]int64, 0, len(q.Answers))
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.AnswerID)
		}
	}
	return ids
}

// AnswerKey is the authoritative, ordered view of a quiz used for grading.
type AnswerKey struct {
	QuizID    int64
	Questions []KeyedQuestion
}

// ValidateQuestionOrder checks a reorder request against the quiz's current
// question ids: each question must appear exactly once and the orders must be
// exactly 1..n with no gaps or duplicates.
func ValidateQuestionOrder(existing []int64, orders map[int64]int) error {
	if len(orders) != len(existing) {
		return NewValidationError(fmt.Sprintf("order must cover all %d questions, got %d", len(existing), len(orders)))
	}
	seen := make(map[int]int64, len(orders))
	for _, id := range existing {
		order, ok := orders[id]
		if !ok {
			return NewValidationError(fmt.Sprintf("missing order for question %d", id)).WithContext("question_id", id)
		}
		if order < 1 || order > len(existing) {
			return NewValidationError(fmt.Sprintf("order %d for question %d is out of range 1..%d", order, id, len(existing))).
				WithContext("question_id", id)
		}
		if other, dup := seen[order]; dup {
			return NewValidationError(fmt.Sprintf("questions %d and %d share order %d", other, id, order)).
				WithContext("order", order)
		}
		seen[order] = id
	}
	return nil
}

// SortQuestions orders questions by Order, falling back to ID for stability.
func SortQuestions(questions []*Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		if questions[i].Order != questions[j].Order {
			return questions[i].Order < questions[j].Order
		}
		return questions[i].ID < questions[j].ID
	})
}

// CatalogRepository is the catalog collaborator consumed by grading and rehydration.
type CatalogRepository interface {
	// GetQuiz returns the quiz header or a NOT_FOUND DomainError.
	GetQuiz(ctx context.Context, quizID int64) (*Quiz, error)

	// GetQuizContent returns the quiz with ordered questions and answers.
	GetQuizContent(ctx context.Context, quizID int64) (*Quiz, error)

	// ListQuizzes returns quizzes newest first.
	ListQuizzes(ctx context.Context, activeOnly bool) ([]*Quiz, error)

	// GetAnswerKey builds the authoritative answer key from current catalog state.
	GetAnswerKey(ctx context.Context, quizID int64) (*AnswerKey, error)

	// QuestionTexts resolves question ids to text; unknown ids are absent from the map.
	QuestionTexts(ctx context.Context, ids []int64) (map[int64]string, error)

	// AnswerTexts resolves answer ids to their text and owning question;
	// unknown ids are absent from the map.
	AnswerTexts(ctx context.Context, ids []int64) (map[int64]AnswerText, error)
}

// AnswerText is an answer's display text together with the question it belongs to.
type AnswerText struct {
	QuestionID int64
	Text       string
}

// CatalogAuthoringRepository holds the write side of the catalog.
type CatalogAuthoringRepository interface {
	CreateQuiz(ctx context.Context, quiz *NewQuiz) (int64, error)
	UpdateQuizDetails(ctx context.Context, quizID int64, title, description string, isActive bool) error
	AddQuestion(ctx context.Context, quizID int64, question *NewQuestion) (int64, error)
	ReplaceQuestion(ctx context.Context, quizID, questionID int64, question *NewQuestion) error
	QuestionIDs(ctx context.Context, quizID int64) ([]int64, error)
	SetQuestionOrders(ctx context.Context, quizID int64, orders map[int64]int) error
	DeleteQuiz(ctx context.Context, quizID int64) error
}

// TransactionManager runs fn inside one storage transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
