package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoQuestionKey: Q1 correct={1,2} (multi-select), Q2 correct={5}.
func twoQuestionKey() *AnswerKey {
	return &AnswerKey{
		QuizID: 7,
		Questions: []KeyedQuestion{
			{QuestionID: 1, Answers: []KeyedAnswer{{1, true}, {2, true}, {3, false}}},
			{QuestionID: 2, Answers: []KeyedAnswer{{4, false}, {5, true}, {6, false}}},
		},
	}
}

func TestGrade_ConcreteScenario(t *testing.T) {
	t.Run("all correct with reordered multi-select", func(t *testing.T) {
		outcome := Grade(twoQuestionKey(), Submission{1: {2, 1}, 2: {5}})
		assert.Equal(t, 2, outcome.TotalQuestions)
		assert.Equal(t, 2, outcome.CorrectCount)
		assert.Equal(t, 0, outcome.IncorrectCount)
		assert.Equal(t, 100.0, outcome.Score())
	})

	t.Run("all wrong", func(t *testing.T) {
		outcome := Grade(twoQuestionKey(), Submission{1: {1}, 2: {6}})
		assert.Equal(t, 2, outcome.TotalQuestions)
		assert.Equal(t, 0, outcome.CorrectCount)
		assert.Equal(t, 2, outcome.IncorrectCount)
		assert.Equal(t, 0.0, outcome.Score())
	})
}

func TestGrade_SetEquality(t *testing.T) {
	tests := []struct {
		name     string
		selected []int64
		want     bool
	}{
		{"same set same order", []int64{1, 2}, true},
		{"same set different order", []int64{2, 1}, true},
		{"subset gets no partial credit", []int64{1}, false},
		{"superset is wrong", []int64{1, 2, 3}, false},
		{"empty selection", []int64{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Grade(twoQuestionKey(), Submission{1: tt.selected})
			assert.Equal(t, tt.want, outcome.Results[0].IsCorrect)
		})
	}
}

func TestGrade_EmptyQuizScoresZero(t *testing.T) {
	outcome := Grade(&AnswerKey{QuizID: 1}, Submission{1: {1}})
	assert.Equal(t, 0, outcome.TotalQuestions)
	assert.Equal(t, 0, outcome.CorrectCount)
	assert.Equal(t, 0, outcome.IncorrectCount)
	assert.Equal(t, 0.0, outcome.Score())
	assert.NotNil(t, outcome.Results)
	assert.Empty(t, outcome.Results)
}

func TestGrade_MissingQuestionIsIncorrect(t *testing.T) {
	key := &AnswerKey{
		QuizID: 3,
		Questions: []KeyedQuestion{
			{QuestionID: 10, Answers: []KeyedAnswer{{100, true}, {101, false}}},
			{QuestionID: 11, Answers: []KeyedAnswer{{110, true}, {111, false}}},
			{QuestionID: 12, Answers: []KeyedAnswer{{120, true}, {121, false}}},
		},
	}

	outcome := Grade(key, Submission{10: {100}, 11: {110}})

	require.Len(t, outcome.Results, 3)
	assert.Equal(t, 3, outcome.TotalQuestions)
	assert.Equal(t, 2, outcome.CorrectCount)
	unanswered := outcome.Results[2]
	assert.Equal(t, int64(12), unanswered.QuestionID)
	assert.False(t, unanswered.IsCorrect)
	assert.Empty(t, unanswered.UserAnswers)
	assert.NotNil(t, unanswered.UserAnswers)
	assert.Equal(t, []int64{120}, unanswered.CorrectAnswers)
}

func TestGrade_QuestionWithoutCorrectAnswers(t *testing.T) {
	key := &AnswerKey{Questions: []KeyedQuestion{{QuestionID: 1, Answers: []KeyedAnswer{{1, false}}}}}

	assert.True(t, Grade(key, Submission{}).Results[0].IsCorrect, "empty selection matches empty correct set")
	assert.False(t, Grade(key, Submission{1: {1}}).Results[0].IsCorrect)
}

func TestGrade_UnknownQuestionsIgnored(t *testing.T) {
	outcome := Grade(twoQuestionKey(), Submission{1: {1, 2}, 2: {5}, 999: {1}})
	assert.Equal(t, 2, outcome.TotalQuestions)
	assert.Len(t, outcome.Results, 2)
	for _, v := range outcome.Results {
		assert.NotEqual(t, int64(999), v.QuestionID)
	}
}

func TestGrade_CountsAlwaysAddUp(t *testing.T) {
	submissions := []Submission{
		{},
		{1: {1, 2}},
		{1: {1, 2}, 2: {5}},
		{1: {3}, 2: {4, 5, 6}},
		{42: {1}},
	}
	for _, sub := range submissions {
		outcome := Grade(twoQuestionKey(), sub)
		assert.Equal(t, outcome.TotalQuestions, outcome.CorrectCount+outcome.IncorrectCount)
	}
}

func TestGrade_ResultsFollowKeyOrder(t *testing.T) {
	key := &AnswerKey{Questions: []KeyedQuestion{{QuestionID: 30}, {QuestionID: 10}, {QuestionID: 20}}}
	outcome := Grade(key, Submission{})
	ids := []int64{}
	for _, v := range outcome.Results {
		ids = append(ids, v.QuestionID)
	}
	assert.Equal(t, []int64{30, 10, 20}, ids)
}

func TestGrade_OutcomeDoesNotAliasSubmission(t *testing.T) {
	sub := Submission{1: {1, 2}}
	outcome := Grade(twoQuestionKey(), sub)
	sub[1][0] = 99
	assert.Equal(t, []int64{1, 2}, outcome.Results[0].UserAnswers)
}

func TestNewSubmission_Coercion(t *testing.T) {
	var raw map[string]interface{}
	body := `{
		"1": ["2", 1, "x", 1.5, null, {"a": 1}, " 3 "],
		"2": 5,
		"abc": [1],
		"3": "garbage",
		"4": [2, 2, "2"]
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	sub := NewSubmission(raw)

	assert.Equal(t, []int64{2, 1, 3}, sub[1])
	assert.Equal(t, []int64{5}, sub[2])
	assert.Equal(t, []int64{}, sub[3])
	assert.Equal(t, []int64{2}, sub[4])
	assert.Len(t, sub, 4)
}

func TestNewSubmission_GarbageSelectionGradesAsEmpty(t *testing.T) {
	sub := NewSubmission(map[string]interface{}{"1": []interface{}{"one", true}})
	outcome := Grade(twoQuestionKey(), sub)
	assert.False(t, outcome.Results[0].IsCorrect)
	assert.Empty(t, outcome.Results[0].UserAnswers)
}

func TestScorePercent(t *testing.T) {
	assert.Equal(t, 0.0, ScorePercent(0, 0))
	assert.Equal(t, 50.0, ScorePercent(1, 2))
	assert.InDelta(t, 66.666, ScorePercent(2, 3), 0.001)
}
