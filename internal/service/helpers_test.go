package service

import (
	"testing"
	"time"

	"quizmaster/internal/domain"
	"quizmaster/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// geographyKey: question 10 has correct answers {100, 101}, question 11 has {110}.
func geographyKey() *domain.AnswerKey {
	return &domain.AnswerKey{
		QuizID: 1,
		Questions: []domain.KeyedQuestion{
			{QuestionID: 10, Answers: []domain.KeyedAnswer{{AnswerID: 100, IsCorrect: true}, {AnswerID: 101, IsCorrect: true}, {AnswerID: 102}}},
			{QuestionID: 11, Answers: []domain.KeyedAnswer{{AnswerID: 110, IsCorrect: true}, {AnswerID: 111}}},
		},
	}
}

func storedResult(t *testing.T, userID string, quizID int64, sub domain.Submission) *domain.QuizResult {
	t.Helper()
	outcome := domain.Grade(geographyKey(), sub)
	blob, err := domain.EncodeOutcome(outcome)
	require.NoError(t, err)
	return &domain.QuizResult{
		ID:          "01HZX3J8Q3M1V2W3X4Y5Z6A7B8",
		UserID:      userID,
		QuizID:      quizID,
		Score:       outcome.Score(),
		CompletedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Details:     blob,
	}
}

// geographyTexts holds the answer texts of geographyKey, each under its own question.
func geographyTexts() map[int64]domain.AnswerText {
	return map[int64]domain.AnswerText{
		100: {QuestionID: 10, Text: "Nile"},
		101: {QuestionID: 10, Text: "Danube"},
		102: {QuestionID: 10, Text: "Alps"},
		110: {QuestionID: 11, Text: "Rome"},
		111: {QuestionID: 11, Text: "Milan"},
	}
}
