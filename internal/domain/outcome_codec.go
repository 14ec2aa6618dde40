package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// OutcomeShape identifies which persisted layout a details blob uses.
type OutcomeShape int

const (
	// ShapeLegacyList is a bare JSON array of verdicts with no summary counts.
	ShapeLegacyList OutcomeShape = iota + 1
	// ShapeWrapped is an object carrying summary counts and a "results" array.
	ShapeWrapped
)

func (s OutcomeShape) String() string {
	switch s {
	case ShapeLegacyList:
		return "legacy_list"
	case ShapeWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// wrappedOutcome mirrors the wrapped layout; pointers record which counts were present.
type wrappedOutcome struct {
	TotalQuestions *int               `json:"total_questions"`
	CorrectCount   *int               `json:"correct_count"`
	IncorrectCount *int               `json:"incorrect_count"`
	Results        *[]QuestionVerdict `json:"results"`
}

// EncodeOutcome serializes an outcome in the wrapped layout.
func EncodeOutcome(outcome *GradedOutcome) (string, error) {
	if outcome == nil {
		return "", errors.New("cannot encode nil outcome")
	}
	normalized := *outcome
	if normalized.Results == nil {
		normalized.Results = []QuestionVerdict{}
	}
	data, err := json.Marshal(&normalized)
	if err != nil {
		return "", fmt.Errorf("failed to marshal graded outcome: %w", err)
	}
	return string(data), nil
}

// DecodeOutcome parses a details blob written in either historical layout and
// normalizes it to a GradedOutcome. Missing counts are recomputed from the
// verdict list. Anything that is not one of the two layouts is reported as a
// CORRUPT_DATA DomainError.
func DecodeOutcome(blob string) (*GradedOutcome, OutcomeShape, error) {
	trimmed := bytes.TrimSpace([]byte(blob))
	if len(trimmed) == 0 {
		return nil, 0, NewCorruptDataError("result details are empty", nil)
	}

	switch trimmed[0] {
	case '[':
		var verdicts []QuestionVerdict
		if err := json.Unmarshal(trimmed, &verdicts); err != nil {
			return nil, ShapeLegacyList, NewCorruptDataError("result details list is malformed", err)
		}
		return normalizeOutcome(verdicts, nil, nil, nil), ShapeLegacyList, nil
	case '{':
		var wrapped wrappedOutcome
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, ShapeWrapped, NewCorruptDataError("result details object is malformed", err)
		}
		if wrapped.Results == nil {
			return nil, ShapeWrapped, NewCorruptDataError("result details object has no results list", nil)
		}
		return normalizeOutcome(*wrapped.Results, wrapped.TotalQuestions, wrapped.CorrectCount, wrapped.IncorrectCount), ShapeWrapped, nil
	default:
		return nil, 0, NewCorruptDataError("result details have an unexpected shape", nil)
	}
}

func normalizeOutcome(verdicts []QuestionVerdict, total, correct, incorrect *int) *GradedOutcome {
	if verdicts == nil {
		verdicts = []QuestionVerdict{}
	}
	correctCount := 0
	for i := range verdicts {
		if verdicts[i].UserAnswers == nil {
			verdicts[i].UserAnswers = []int64{}
		}
		if verdicts[i].CorrectAnswers == nil {
			verdicts[i].CorrectAnswers = []int64{}
		}
		if verdicts[i].IsCorrect {
			correctCount++
		}
	}

	outcome := &GradedOutcome{
		TotalQuestions: len(verdicts),
		CorrectCount:   correctCount,
		Results:        verdicts,
	}
	if total != nil {
		outcome.TotalQuestions = *total
	}
	if correct != nil {
		outcome.CorrectCount = *correct
	}
	if incorrect != nil {
		outcome.IncorrectCount = *incorrect
	} else {
		outcome.IncorrectCount = outcome.TotalQuestions - outcome.CorrectCount
	}
	return outcome
}
