// Package quizfile reads quiz definitions for bulk loading.
//
// Two formats are accepted. A .json file holds an array of quizzes in the
// same shape as the admin create-quiz request. Any other file is the plain
// text layout authors write by hand:
//
//	Quiz title
//	1. Question text
//	a) first option
//	b) second option
//	Correct answer: b
//
// The correct-answer line may list several letters for a multi-select question.
package quizfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/validation"
)

var correctMarkers = []string{"correct answer:", "правильный ответ:"}

// Load reads every quiz defined in path.
func Load(path string, v *validation.Validator) ([]*domain.NewQuiz, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quiz file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(f, v)
	}
	quiz, err := ParseText(f)
	if err != nil {
		return nil, err
	}
	return []*domain.NewQuiz{quiz}, nil
}

// ParseJSON decodes an array of create-quiz requests and validates each.
func ParseJSON(r io.Reader, v *validation.Validator) ([]*domain.NewQuiz, error) {
	var reqs []dto.CreateQuizRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, domain.NewValidationError("quiz file is not a JSON array of quizzes").WithContext("cause", err.Error())
	}
	quizzes := make([]*domain.NewQuiz, 0, len(reqs))
	for i := range reqs {
		if err := v.ValidateStruct(&reqs[i]); err != nil {
			return nil, fmt.Errorf("quiz %d: %w", i+1, err)
		}
		quizzes = append(quizzes, reqs[i].ToDomain())
	}
	return quizzes, nil
}

// ParseText parses the plain text layout. Lines that fit none of the
// patterns are skipped.
func ParseText(r io.Reader) (*domain.NewQuiz, error) {
	quiz := &domain.NewQuiz{}
	var current *domain.NewQuestion
	var letters []rune

	flush := func() {
		if current != nil {
			quiz.Questions = append(quiz.Questions, *current)
		}
		current, letters = nil, nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quiz.Title == "" {
			quiz.Title = line
			continue
		}

		if text, ok := questionLine(line); ok {
			flush()
			current = &domain.NewQuestion{Text: text}
			continue
		}
		if current == nil {
			continue
		}
		if letter, text, ok := answerLine(line); ok {
			current.Answers = append(current.Answers, domain.NewAnswer{Text: text})
			letters = append(letters, letter)
			continue
		}
		if marked, ok := correctLine(line); ok {
			for i, letter := range letters {
				if marked[letter] {
					current.Answers[i].IsCorrect = true
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quiz file: %w", err)
	}
	flush()

	if len(quiz.Questions) == 0 {
		return nil, domain.NewValidationError("quiz file has no questions")
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return quiz, nil
}

// questionLine matches "12. text".
func questionLine(line string) (string, bool) {
	dot := strings.IndexByte(line, '.')
	if dot <= 0 {
		return "", false
	}
	for _, c := range line[:dot] {
		if !unicode.IsDigit(c) {
			return "", false
		}
	}
	rest := line[dot+1:]
	if rest == "" || unicode.IsDigit(rune(rest[0])) {
		return "", false
	}
	text := strings.TrimSpace(rest)
	return text, text != ""
}

// answerLine matches "b) text".
func answerLine(line string) (rune, string, bool) {
	runes := []rune(line)
	if len(runes) < 3 || runes[1] != ')' || !unicode.IsLetter(runes[0]) {
		return 0, "", false
	}
	return unicode.ToLower(runes[0]), strings.TrimSpace(string(runes[2:])), true
}

// correctLine returns the option letters named after a correct-answer
// marker. Only single-letter tokens count, so "b (Paris)" marks b alone.
func correctLine(line string) (map[rune]bool, bool) {
	lower := strings.ToLower(line)
	for _, marker := range correctMarkers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		marked := make(map[rune]bool)
		for _, token := range strings.FieldsFunc(lower[idx+len(marker):], func(c rune) bool { return !unicode.IsLetter(c) }) {
			if r := []rune(token); len(r) == 1 {
				marked[r[0]] = true
			}
		}
		return marked, true
	}
	return nil, false
}
