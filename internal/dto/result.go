package dto

import (
	"time"

	"quizmaster/internal/domain"
)

// SubmissionResponse is the graded outcome of a submission plus its score and
// the id of the stored result.
// @Description Grading outcome
type SubmissionResponse struct {
	TotalQuestions int               `json:"total_questions"`
	CorrectCount   int               `json:"correct_count"`
	IncorrectCount int               `json:"incorrect_count"`
	Results        []VerdictResponse `json:"results"`
	Score          float64           `json:"score"`
	ResultID       string            `json:"result_id"`
}

type VerdictResponse struct {
	QuestionID     int64   `json:"question_id"`
	IsCorrect      bool    `json:"is_correct"`
	UserAnswers    []int64 `json:"user_answers"`
	CorrectAnswers []int64 `json:"correct_answers"`
}

// ResultSummaryResponse is one attempt in a result history.
type ResultSummaryResponse struct {
	ResultID    string    `json:"result_id"`
	QuizID      int64     `json:"quiz_id"`
	Score       float64   `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// ResultDetailResponse is a stored attempt resolved against the catalog.
// @Description Rehydrated quiz result
type ResultDetailResponse struct {
	ResultID       string                  `json:"result_id"`
	QuizID         int64                   `json:"quiz_id"`
	Score          float64                 `json:"score"`
	CompletedAt    time.Time               `json:"completed_at"`
	TotalQuestions int                     `json:"total_questions"`
	CorrectCount   int                     `json:"correct_count"`
	IncorrectCount int                     `json:"incorrect_count"`
	Details        []VerdictDetailResponse `json:"details"`
	Warning        string                  `json:"warning,omitempty"`
}

type VerdictDetailResponse struct {
	QuestionID         int64    `json:"question_id"`
	QuestionText       string   `json:"question_text"`
	IsCorrect          bool     `json:"is_correct"`
	UserAnswers        []int64  `json:"user_answers"`
	CorrectAnswers     []int64  `json:"correct_answers"`
	UserAnswersText    []string `json:"user_answers_text"`
	CorrectAnswersText []string `json:"correct_answers_text"`
}

func ToSubmissionResponse(result *domain.QuizResult, outcome *domain.GradedOutcome) *SubmissionResponse {
	resp := &SubmissionResponse{
		TotalQuestions: outcome.TotalQuestions,
		CorrectCount:   outcome.CorrectCount,
		IncorrectCount: outcome.IncorrectCount,
		Results:        make([]VerdictResponse, 0, len(outcome.Results)),
		Score:          result.Score,
		ResultID:       result.ID,
	}
	for _, v := range outcome.Results {
		resp.Results = append(resp.Results, VerdictResponse{
			QuestionID:     v.QuestionID,
			IsCorrect:      v.IsCorrect,
			UserAnswers:    v.UserAnswers,
			CorrectAnswers: v.CorrectAnswers,
		})
	}
	return resp
}

func ToResultSummaryResponses(results []*domain.QuizResult) []ResultSummaryResponse {
	out := make([]ResultSummaryResponse, 0, len(results))
	for _, r := range results {
		out = append(out, ResultSummaryResponse{
			ResultID:    r.ID,
			QuizID:      r.QuizID,
			Score:       r.Score,
			CompletedAt: r.CompletedAt,
		})
	}
	return out
}

func ToResultDetailResponse(view *domain.ResultView) *ResultDetailResponse {
	resp := &ResultDetailResponse{
		ResultID:       view.ResultID,
		QuizID:         view.QuizID,
		Score:          view.Score,
		CompletedAt:    view.CompletedAt,
		TotalQuestions: view.TotalQuestions,
		CorrectCount:   view.CorrectCount,
		IncorrectCount: view.IncorrectCount,
		Details:        make([]VerdictDetailResponse, 0, len(view.Details)),
		Warning:        view.Warning,
	}
	for _, d := range view.Details {
		resp.Details = append(resp.Details, VerdictDetailResponse{
			QuestionID:         d.QuestionID,
			QuestionText:       d.QuestionText,
			IsCorrect:          d.IsCorrect,
			UserAnswers:        d.UserAnswers,
			CorrectAnswers:     d.CorrectAnswers,
			UserAnswersText:    d.UserAnswersText,
			CorrectAnswersText: d.CorrectAnswersText,
		})
	}
	return resp
}
