package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuestionOrder(t *testing.T) {
	existing := []int64{10, 11, 12}

	tests := []struct {
		name    string
		orders  map[int64]int
		wantErr string
	}{
		{"contiguous permutation", map[int64]int{10: 3, 11: 1, 12: 2}, ""},
		{"missing question", map[int64]int{10: 1, 11: 2}, "must cover all 3"},
		{"unknown question", map[int64]int{10: 1, 11: 2, 99: 3}, "missing order for question 12"},
		{"duplicate order", map[int64]int{10: 1, 11: 1, 12: 2}, "share order 1"},
		{"gap", map[int64]int{10: 1, 11: 2, 12: 4}, "out of range"},
		{"zero", map[int64]int{10: 0, 11: 1, 12: 2}, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestionOrder(existing, tt.orders)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsCode(err, CodeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateQuestionOrder_EmptyQuiz(t *testing.T) {
	assert.NoError(t, ValidateQuestionOrder(nil, map[int64]int{}))
}

func TestNewQuiz_Validate(t *testing.T) {
	valid := NewQuiz{
		Title: "Geography",
		Questions: []NewQuestion{
			{Text: "Capital of France", Answers: []NewAnswer{{Text: "Paris", IsCorrect: true}, {Text: "Lyon"}}},
		},
	}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = "   "
	assert.True(t, IsCode(noTitle.Validate(), CodeValidation))

	blankAnswer := NewQuiz{
		Title:     "Geography",
		Questions: []NewQuestion{{Text: "Capital", Answers: []NewAnswer{{Text: ""}}}},
	}
	err := blankAnswer.Validate()
	assert.True(t, IsCode(err, CodeValidation))
	assert.True(t, strings.Contains(err.Error(), "answer text"))
}

func TestSortQuestions(t *testing.T) {
	questions := []*Question{
		{ID: 3, Order: 2},
		{ID: 2, Order: 1},
		{ID: 1, Order: 2},
	}
	SortQuestions(questions)
	assert.Equal(t, int64(2), questions[0].ID)
	assert.Equal(t, int64(1), questions[1].ID)
	assert.Equal(t, int64(3), questions[2].ID)
}
