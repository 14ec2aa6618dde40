package domain

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"
)

// Submission maps question id to the answer ids selected for one attempt.
// Selections keep their first-seen order and contain no duplicates.
type Submission map[int64][]int64

// NewSubmission coerces a loosely-typed request body into a Submission.
//
// Keys must parse as base-10 integers; other keys are ignored. Values may be
// an array or a lone scalar. Integral JSON numbers and numeric strings are
// kept, everything else is dropped silently: a malformed entry degrades to a
// smaller selection instead of failing the request.
func NewSubmission(raw map[string]interface{}) Submission {
	sub := make(Submission, len(raw))
	for key, value := range raw {
		questionID, ok := coerceID(key)
		if !ok {
			continue
		}
		var items []interface{}
		switch v := value.(type) {
		case []interface{}:
			items = v
		case nil:
		default:
			items = []interface{}{v}
		}
		for _, item := range items {
			if answerID, ok := coerceID(item); ok {
				sub.add(questionID, answerID)
			}
		}
		if _, exists := sub[questionID]; !exists {
			sub[questionID] = []int64{}
		}
	}
	return sub
}

func (s Submission) add(questionID, answerID int64) {
	for _, existing := range s[questionID] {
		if existing == answerID {
			return
		}
	}
	s[questionID] = append(s[questionID], answerID)
}

func coerceID(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return id, err == nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.Abs(t) > 1<<53 {
			return 0, false
		}
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	default:
		return 0, false
	}
}

// QuestionVerdict is the per-question grading outcome. It carries ids only,
// so later catalog edits never change a historical verdict.
type QuestionVerdict struct {
	QuestionID     int64   `json:"question_id"`
	IsCorrect      bool    `json:"is_correct"`
	UserAnswers    []int64 `json:"user_answers"`
	CorrectAnswers []int64 `json:"correct_answers"`
}

// GradedOutcome is the catalog-independent record of how a submission scored.
type GradedOutcome struct {
	TotalQuestions int               `json:"total_questions"`
	CorrectCount   int               `json:"correct_count"`
	IncorrectCount int               `json:"incorrect_count"`
	Results        []QuestionVerdict `json:"results"`
}

// Score returns the percentage of correctly answered questions, 0 for an empty quiz.
func (o *GradedOutcome) Score() float64 {
	return ScorePercent(o.CorrectCount, o.TotalQuestions)
}

// ScorePercent returns correct/total*100, or 0 when total is 0.
func ScorePercent(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Grade scores sub against key. Every keyed question is graded, answered or
// not; submitted questions absent from the key are ignored. A question is
// correct only when the selected set equals the correct set exactly.
func Grade(key *AnswerKey, sub Submission) *GradedOutcome {
	outcome := &GradedOutcome{
		TotalQuestions: len(key.Questions),
		Results:        make([]QuestionVerdict, 0, len(key.Questions)),
	}
	for _, q := range key.Questions {
		selected := sub[q.QuestionID]
		if selected == nil {
			selected = []int64{}
		}
		correct := q.CorrectIDs()
		isCorrect := sameSet(selected, correct)
		if isCorrect {
			outcome.CorrectCount++
		}
		outcome.Results = append(outcome.Results, QuestionVerdict{
			QuestionID:     q.QuestionID,
			IsCorrect:      isCorrect,
			UserAnswers:    append([]int64{}, selected...),
			CorrectAnswers: correct,
		})
	}
	outcome.IncorrectCount = outcome.TotalQuestions - outcome.CorrectCount
	return outcome
}

func sameSet(a, b []int64) bool {
	left := make(map[int64]struct{}, len(a))
	for _, id := range a {
		left[id] = struct{}{}
	}
	right := make(map[int64]struct{}, len(b))
	for _, id := range b {
		right[id] = struct{}{}
	}
	if len(left) != len(right) {
		return false
	}
	for id := range left {
		if _, ok := right[id]; !ok {
			return false
		}
	}
	return true
}

// QuizResult is the durable, append-only record of one graded attempt.
// Details holds the encoded GradedOutcome exactly as persisted.
type QuizResult struct {
	ID          string
	UserID      string
	QuizID      int64
	Score       float64
	CompletedAt time.Time
	Details     string
}

// ResultRepository persists graded outcomes. Rows are never updated.
type ResultRepository interface {
	Create(ctx context.Context, result *QuizResult) error
	ListFor(ctx context.Context, userID string, quizID int64) ([]*QuizResult, error)
	GetByID(ctx context.Context, resultID string) (*QuizResult, error)
}
