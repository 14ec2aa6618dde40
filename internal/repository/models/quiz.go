package models

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flag is a boolean column. SQLite and Oracle store flags as integers, so
// Scan accepts numeric and textual encodings as well as native booleans.
type Flag bool

// Value implements the driver.Valuer interface
func (f Flag) Value() (driver.Value, error) {
	return bool(f), nil
}

// Scan implements the sql.Scanner interface
func (f *Flag) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case float64:
		*f = v != 0
	case []byte:
		return f.parse(string(v))
	case string:
		return f.parse(v)
	default:
		return errors.New("Flag Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	return nil
}

func (f *Flag) parse(s string) error {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*f = n != 0
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("Flag Scan: cannot parse %q", s)
	}
	*f = Flag(b)
	return nil
}

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	IsActive    Flag           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Question is a row of the questions table.
type Question struct {
	ID        int64  `db:"id"`
	QuizID    int64  `db:"quiz_id"`
	Text      string `db:"text"`
	SortOrder int    `db:"sort_order"`
}

// Answer is a row of the answers table.
type Answer struct {
	ID         int64  `db:"id"`
	QuestionID int64  `db:"question_id"`
	Text       string `db:"text"`
	IsCorrect  Flag   `db:"is_correct"`
	SortOrder  int    `db:"sort_order"`
}

// IDText is a projection used by batch text lookups.
type IDText struct {
	ID   int64  `db:"id"`
	Text string `db:"text"`
}

// AnswerText is the answer lookup projection; QuestionID scopes the text.
type AnswerText struct {
	ID         int64  `db:"id"`
	QuestionID int64  `db:"question_id"`
	Text       string `db:"text"`
}
