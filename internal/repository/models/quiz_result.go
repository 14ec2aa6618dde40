package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DetailsBlob is the encoded grading outcome stored in quiz_results.details.
// It is kept verbatim; decoding happens in the domain layer.
type DetailsBlob string

// Value implements the driver.Valuer interface
func (b DetailsBlob) Value() (driver.Value, error) {
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (b *DetailsBlob) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		// NULL surfaces later as corrupt data, not as a scan failure.
		*b = ""
	case []byte:
		*b = DetailsBlob(v)
	case string:
		*b = DetailsBlob(v)
	default:
		return errors.New("DetailsBlob Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	return nil
}

// QuizResult is a row of the quiz_results table.
type QuizResult struct {
	ID          string      `db:"id"`
	UserID      string      `db:"user_id"`
	QuizID      int64       `db:"quiz_id"`
	Score       float64     `db:"score"`
	CompletedAt time.Time   `db:"completed_at"`
	Details     DetailsBlob `db:"details"`
}
