package repository

import (
	"context"
	"fmt"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const resultColumns = `id "id", user_id "user_id", quiz_id "quiz_id", score "score", completed_at "completed_at", details "details"`

// QuizResultDatabaseAdapter implements domain.ResultRepository using sqlx.DB.
// Rows are insert-only.
type QuizResultDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizResultDatabaseAdapter creates a new instance of QuizResultDatabaseAdapter
func NewQuizResultDatabaseAdapter(db *sqlx.DB) domain.ResultRepository {
	return &QuizResultDatabaseAdapter{db: db}
}

func toDomainQuizResult(m *models.QuizResult) *domain.QuizResult {
	return &domain.QuizResult{
		ID:          m.ID,
		UserID:      m.UserID,
		QuizID:      m.QuizID,
		Score:       m.Score,
		CompletedAt: m.CompletedAt.UTC(),
		Details:     string(m.Details),
	}
}

func fromDomainQuizResult(r *domain.QuizResult) *models.QuizResult {
	return &models.QuizResult{
		ID:          r.ID,
		UserID:      r.UserID,
		QuizID:      r.QuizID,
		Score:       r.Score,
		CompletedAt: r.CompletedAt.UTC(),
		Details:     models.DetailsBlob(r.Details),
	}
}

// Create implements domain.ResultRepository
func (a *QuizResultDatabaseAdapter) Create(ctx context.Context, result *domain.QuizResult) error {
	if result == nil {
		return fmt.Errorf("cannot save nil quiz result")
	}
	row := fromDomainQuizResult(result)
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`INSERT INTO quiz_results (id, user_id, quiz_id, score, completed_at, details)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		row.ID, row.UserID, row.QuizID, row.Score, row.CompletedAt, row.Details); err != nil {
		return fmt.Errorf("failed to insert quiz result %s: %w", row.ID, err)
	}
	return nil
}

// ListFor implements domain.ResultRepository. Results come back most recent
// first; ties on completed_at fall back to the time-ordered id.
func (a *QuizResultDatabaseAdapter) ListFor(ctx context.Context, userID string, quizID int64) ([]*domain.QuizResult, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.QuizResult
	query := exec.Rebind(`SELECT ` + resultColumns + ` FROM quiz_results
		WHERE user_id = ? AND quiz_id = ?
		ORDER BY completed_at DESC, id DESC`)
	if err := exec.SelectContext(ctx, &rows, query, userID, quizID); err != nil {
		return nil, fmt.Errorf("failed to list results of user %s for quiz %d: %w", userID, quizID, err)
	}

	results := make([]*domain.QuizResult, 0, len(rows))
	for i := range rows {
		results = append(results, toDomainQuizResult(&rows[i]))
	}
	return results, nil
}

// GetByID implements domain.ResultRepository
func (a *QuizResultDatabaseAdapter) GetByID(ctx context.Context, resultID string) (*domain.QuizResult, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.QuizResult
	query := exec.Rebind(`SELECT ` + resultColumns + ` FROM quiz_results WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, resultID); err != nil {
		if isNoRows(err) {
			return nil, domain.NewResultNotFoundError(fmt.Sprintf("quiz result not found with ID: %s", resultID)).
				WithContext("result_id", resultID)
		}
		return nil, fmt.Errorf("failed to get quiz result %s: %w", resultID, err)
	}
	return toDomainQuizResult(&row), nil
}
