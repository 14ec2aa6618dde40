package domain

import (
	"fmt"
	"sort"
	"time"
)

// VerdictView is a verdict with its ids resolved to display text.
type VerdictView struct {
	QuestionID         int64
	QuestionText       string
	IsCorrect          bool
	UserAnswers        []int64
	CorrectAnswers     []int64
	UserAnswersText    []string
	CorrectAnswersText []string
}

// ResultView is the display-ready reconstruction of a stored QuizResult.
type ResultView struct {
	ResultID       string
	UserID         string
	QuizID         int64
	Score          float64
	CompletedAt    time.Time
	TotalQuestions int
	CorrectCount   int
	IncorrectCount int
	Details        []VerdictView
	// Warning is set when the stored details could not be read.
	Warning string
}

// UnknownText is the placeholder shown for an id the catalog no longer knows.
func UnknownText(id int64) string {
	return fmt.Sprintf("Unknown (%d)", id)
}

// ReferencedIDs returns the distinct question and answer ids an outcome
// mentions, sorted ascending.
func ReferencedIDs(outcome *GradedOutcome) (questionIDs, answerIDs []int64) {
	questions := make(map[int64]struct{})
	answers := make(map[int64]struct{})
	for _, v := range outcome.Results {
		questions[v.QuestionID] = struct{}{}
		for _, id := range v.UserAnswers {
			answers[id] = struct{}{}
		}
		for _, id := range v.CorrectAnswers {
			answers[id] = struct{}{}
		}
	}
	return sortedKeys(questions), sortedKeys(answers)
}

func sortedKeys(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NewResultView joins an outcome against catalog texts. Ids missing from the
// text maps get an UnknownText placeholder, as does an answer id that belongs
// to some other question; a stale reference never hides the rest of the result.
func NewResultView(result *QuizResult, outcome *GradedOutcome, questionTexts map[int64]string, answerTexts map[int64]AnswerText) *ResultView {
	view := newResultHeader(result)
	view.TotalQuestions = outcome.TotalQuestions
	view.CorrectCount = outcome.CorrectCount
	view.IncorrectCount = outcome.IncorrectCount
	view.Details = make([]VerdictView, 0, len(outcome.Results))

	for _, v := range outcome.Results {
		questionText, ok := questionTexts[v.QuestionID]
		if !ok {
			questionText = UnknownText(v.QuestionID)
		}
		view.Details = append(view.Details, VerdictView{
			QuestionID:         v.QuestionID,
			QuestionText:       questionText,
			IsCorrect:          v.IsCorrect,
			UserAnswers:        v.UserAnswers,
			CorrectAnswers:     v.CorrectAnswers,
			UserAnswersText:    resolveAnswerTexts(v.QuestionID, v.UserAnswers, answerTexts),
			CorrectAnswersText: resolveAnswerTexts(v.QuestionID, v.CorrectAnswers, answerTexts),
		})
	}
	return view
}

// NewCorruptResultView is the degraded view for a result whose details could
// not be decoded: the record stays visible with an empty detail list.
func NewCorruptResultView(result *QuizResult, warning string) *ResultView {
	view := newResultHeader(result)
	view.Details = []VerdictView{}
	view.Warning = warning
	return view
}

func newResultHeader(result *QuizResult) *ResultView {
	return &ResultView{
		ResultID:    result.ID,
		UserID:      result.UserID,
		QuizID:      result.QuizID,
		Score:       result.Score,
		CompletedAt: result.CompletedAt,
	}
}

func resolveAnswerTexts(questionID int64, ids []int64, texts map[int64]AnswerText) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if answer, ok := texts[id]; ok && answer.QuestionID == questionID {
			out = append(out, answer.Text)
			continue
		}
		out = append(out, UnknownText(id))
	}
	return out
}

// UnresolvedAnswers counts the distinct answer ids per verdict that have no
// text under that verdict's question.
func UnresolvedAnswers(outcome *GradedOutcome, texts map[int64]AnswerText) int {
	missing := 0
	for _, v := range outcome.Results {
		seen := make(map[int64]struct{}, len(v.UserAnswers)+len(v.CorrectAnswers))
		for _, ids := range [][]int64{v.UserAnswers, v.CorrectAnswers} {
			for _, id := range ids {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				if answer, ok := texts[id]; !ok || answer.QuestionID != v.QuestionID {
					missing++
				}
			}
		}
	}
	return missing
}
