package dto

import (
	"time"

	"quizmaster/internal/domain"
)

// QuizSummaryResponse represents a quiz in a listing
// @Description Quiz listing entry
type QuizSummaryResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuizContentResponse is a quiz ready to be taken. Correctness is never included.
// @Description Quiz with ordered questions and answer options
type QuizContentResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions"`
}

type QuestionResponse struct {
	ID      int64                  `json:"id"`
	Text    string                 `json:"text"`
	Order   int                    `json:"order"`
	Answers []AnswerOptionResponse `json:"answers"`
}

type AnswerOptionResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

func ToQuizSummaryResponse(q *domain.Quiz) QuizSummaryResponse {
	return QuizSummaryResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		IsActive:    q.IsActive,
		CreatedAt:   q.CreatedAt,
	}
}

func ToQuizContentResponse(q *domain.Quiz) *QuizContentResponse {
	resp := &QuizContentResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Questions:   make([]QuestionResponse, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		qr := QuestionResponse{
			ID:      question.ID,
			Text:    question.Text,
			Order:   question.Order,
			Answers: make([]AnswerOptionResponse, 0, len(question.Answers)),
		}
		for _, a := range question.Answers {
			qr.Answers = append(qr.Answers, AnswerOptionResponse{ID: a.ID, Text: a.Text})
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

// CreateQuizRequest is the admin payload for a new quiz.
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description" validate:"max=4000"`
	Questions   []QuestionRequest `json:"questions" validate:"dive"`
}

type QuestionRequest struct {
	Text    string          `json:"text" validate:"required"`
	Answers []AnswerRequest `json:"answers" validate:"dive"`
}

type AnswerRequest struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// UpdateQuizRequest is the admin payload for editing quiz details.
type UpdateQuizRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=4000"`
	IsActive    *bool  `json:"is_active" validate:"required"`
}

// ReorderQuestionsRequest assigns each question of a quiz its new position.
type ReorderQuestionsRequest struct {
	Orders []QuestionOrder `json:"orders" validate:"required,dive"`
}

type QuestionOrder struct {
	QuestionID int64 `json:"question_id" validate:"required,gt=0"`
	Order      int   `json:"order" validate:"required,gt=0"`
}

// CreatedResponse carries the id of a created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func (r *QuestionRequest) ToDomain() domain.NewQuestion {
	q := domain.NewQuestion{Text: r.Text, Answers: make([]domain.NewAnswer, 0, len(r.Answers))}
	for _, a := range r.Answers {
		q.Answers = append(q.Answers, domain.NewAnswer{Text: a.Text, IsCorrect: a.IsCorrect})
	}
	return q
}

func (r *CreateQuizRequest) ToDomain() *domain.NewQuiz {
	quiz := &domain.NewQuiz{
		Title:       r.Title,
		Description: r.Description,
		Questions:   make([]domain.NewQuestion, 0, len(r.Questions)),
	}
	for i := range r.Questions {
		quiz.Questions = append(quiz.Questions, r.Questions[i].ToDomain())
	}
	return quiz
}

// ToMap converts the request to question id -> order. A question listed
// twice is a validation error.
func (r *ReorderQuestionsRequest) ToMap() (map[int64]int, error) {
	orders := make(map[int64]int, len(r.Orders))
	for _, o := range r.Orders {
		if _, dup := orders[o.QuestionID]; dup {
			return nil, domain.NewValidationError("question listed more than once").WithContext("question_id", o.QuestionID)
		}
		orders[o.QuestionID] = o.Order
	}
	return orders, nil
}
