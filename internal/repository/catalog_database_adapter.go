package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"quizmaster/internal/domain"
	"quizmaster/internal/repository/models"
	"quizmaster/internal/util"

	"github.com/jmoiron/sqlx"
)

// Oracle rejects IN lists longer than 1000 elements.
const maxInListSize = 500

const quizColumns = `id "id", title "title", description "description", is_active "is_active", created_at "created_at"`

// CatalogDatabaseAdapter implements domain.CatalogRepository and
// domain.CatalogAuthoringRepository using sqlx.DB. Every method runs on the
// transaction carried by ctx when there is one.
type CatalogDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCatalogDatabaseAdapter creates a new instance of CatalogDatabaseAdapter
func NewCatalogDatabaseAdapter(db *sqlx.DB) *CatalogDatabaseAdapter {
	return &CatalogDatabaseAdapter{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: util.NullStringToString(m.Description),
		IsActive:    bool(m.IsActive),
		CreatedAt:   m.CreatedAt,
	}
}

// GetQuiz implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) GetQuiz(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Quiz
	query := exec.Rebind(`SELECT ` + quizColumns + ` FROM quizzes WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, quizID); err != nil {
		if isNoRows(err) {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
		return nil, fmt.Errorf("failed to get quiz %d: %w", quizID, err)
	}
	return toDomainQuiz(&row), nil
}

// ListQuizzes implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) ListQuizzes(ctx context.Context, activeOnly bool) ([]*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Quiz
	var err error
	if activeOnly {
		query := exec.Rebind(`SELECT ` + quizColumns + ` FROM quizzes WHERE is_active = ? ORDER BY created_at DESC, id DESC`)
		err = exec.SelectContext(ctx, &rows, query, true)
	} else {
		err = exec.SelectContext(ctx, &rows, `SELECT `+quizColumns+` FROM quizzes ORDER BY created_at DESC, id DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}

// GetQuizContent implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) GetQuizContent(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	quiz, err := a.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	questions, answers, err := a.loadQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[int64]*domain.Question, len(questions))
	quiz.Questions = make([]*domain.Question, 0, len(questions))
	for _, q := range questions {
		question := &domain.Question{ID: q.ID, QuizID: q.QuizID, Text: q.Text, Order: q.SortOrder, Answers: []*domain.Answer{}}
		byQuestion[q.ID] = question
		quiz.Questions = append(quiz.Questions, question)
	}
	for _, ans := range answers {
		if question, ok := byQuestion[ans.QuestionID]; ok {
			question.Answers = append(question.Answers, &domain.Answer{
				ID:         ans.ID,
				QuestionID: ans.QuestionID,
				Text:       ans.Text,
				IsCorrect:  bool(ans.IsCorrect),
				Order:      ans.SortOrder,
			})
		}
	}
	return quiz, nil
}

// GetAnswerKey implements domain.CatalogRepository. It always reads the
// current catalog state.
func (a *CatalogDatabaseAdapter) GetAnswerKey(ctx context.Context, quizID int64) (*domain.AnswerKey, error) {
	if _, err := a.GetQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	questions, answers, err := a.loadQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}

	key := &domain.AnswerKey{QuizID: quizID, Questions: make([]domain.KeyedQuestion, 0, len(questions))}
	index := make(map[int64]int, len(questions))
	for i, q := range questions {
		index[q.ID] = i
		key.Questions = append(key.Questions, domain.KeyedQuestion{QuestionID: q.ID, Answers: []domain.KeyedAnswer{}})
	}
	for _, ans := range answers {
		if i, ok := index[ans.QuestionID]; ok {
			key.Questions[i].Answers = append(key.Questions[i].Answers, domain.KeyedAnswer{
				AnswerID:  ans.ID,
				IsCorrect: bool(ans.IsCorrect),
			})
		}
	}
	return key, nil
}

// loadQuestions returns a quiz's questions and answers, each in presentation order.
func (a *CatalogDatabaseAdapter) loadQuestions(ctx context.Context, quizID int64) ([]models.Question, []models.Answer, error) {
	exec := GetExecutor(ctx, a.db)

	var questions []models.Question
	questionQuery := exec.Rebind(`SELECT id "id", quiz_id "quiz_id", text "text", sort_order "sort_order"
		FROM questions WHERE quiz_id = ? ORDER BY sort_order, id`)
	if err := exec.SelectContext(ctx, &questions, questionQuery, quizID); err != nil {
		return nil, nil, fmt.Errorf("failed to load questions for quiz %d: %w", quizID, err)
	}

	var answers []models.Answer
	answerQuery := exec.Rebind(`SELECT id "id", question_id "question_id", text "text", is_correct "is_correct", sort_order "sort_order"
		FROM answers WHERE question_id IN (SELECT id FROM questions WHERE quiz_id = ?)
		ORDER BY question_id, sort_order, id`)
	if err := exec.SelectContext(ctx, &answers, answerQuery, quizID); err != nil {
		return nil, nil, fmt.Errorf("failed to load answers for quiz %d: %w", quizID, err)
	}
	return questions, answers, nil
}

// QuestionTexts implements domain.CatalogRepository
func (a *CatalogDatabaseAdapter) QuestionTexts(ctx context.Context, ids []int64) (map[int64]string, error) {
	rows, err := selectByIDs[models.IDText](ctx, GetExecutor(ctx, a.db),
		`SELECT id "id", text "text" FROM questions WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	texts := make(map[int64]string, len(rows))
	for _, row := range rows {
		texts[row.ID] = row.Text
	}
	return texts, nil
}

// AnswerTexts implements domain.CatalogRepository. Each text carries its
// question id so callers can reject an id submitted against another question.
func (a *CatalogDatabaseAdapter) AnswerTexts(ctx context.Context, ids []int64) (map[int64]domain.AnswerText, error) {
	rows, err := selectByIDs[models.AnswerText](ctx, GetExecutor(ctx, a.db),
		`SELECT id "id", question_id "question_id", text "text" FROM answers WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	texts := make(map[int64]domain.AnswerText, len(rows))
	for _, row := range rows {
		texts[row.ID] = domain.AnswerText{QuestionID: row.QuestionID, Text: row.Text}
	}
	return texts, nil
}

// selectByIDs runs baseQuery once per chunk of ids, expanding its single IN (?).
func selectByIDs[T any](ctx context.Context, exec DBTX, baseQuery string, ids []int64) ([]T, error) {
	var out []T
	for start := 0; start < len(ids); start += maxInListSize {
		end := min(start+maxInListSize, len(ids))
		query, args, err := sqlx.In(baseQuery, ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to build text lookup: %w", err)
		}
		var rows []T
		if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("failed to look up texts: %w", err)
		}
		out = append(out, rows...)
	}
	return out, nil
}

// CreateQuiz implements domain.CatalogAuthoringRepository. Question and
// answer orders are assigned 1..n from input position.
func (a *CatalogDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.NewQuiz) (int64, error) {
	exec := GetExecutor(ctx, a.db)
	quizID, err := insertReturningID(ctx, exec,
		`INSERT INTO quizzes (title, description, is_active, created_at) VALUES (?, ?, ?, ?)`,
		quiz.Title, quiz.Description, true, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert quiz: %w", err)
	}
	for i := range quiz.Questions {
		if _, err := a.insertQuestion(ctx, exec, quizID, i+1, &quiz.Questions[i]); err != nil {
			return 0, err
		}
	}
	return quizID, nil
}

// UpdateQuizDetails implements domain.CatalogAuthoringRepository
func (a *CatalogDatabaseAdapter) UpdateQuizDetails(ctx context.Context, quizID int64, title, description string, isActive bool) error {
	exec := GetExecutor(ctx, a.db)
	res, err := exec.ExecContext(ctx,
		exec.Rebind(`UPDATE quizzes SET title = ?, description = ?, is_active = ? WHERE id = ?`),
		title, description, isActive, quizID)
	if err != nil {
		return fmt.Errorf("failed to update quiz %d: %w", quizID, err)
	}
	return expectAffected(res, domain.NewQuizNotFoundError(quizID))
}

// AddQuestion implements domain.CatalogAuthoringRepository. The question is
// appended after the current last one.
func (a *CatalogDatabaseAdapter) AddQuestion(ctx context.Context, quizID int64, question *domain.NewQuestion) (int64, error) {
	if _, err := a.GetQuiz(ctx, quizID); err != nil {
		return 0, err
	}
	exec := GetExecutor(ctx, a.db)
	var maxOrder int
	if err := exec.GetContext(ctx, &maxOrder,
		exec.Rebind(`SELECT COALESCE(MAX(sort_order), 0) FROM questions WHERE quiz_id = ?`), quizID); err != nil {
		return 0, fmt.Errorf("failed to read question order for quiz %d: %w", quizID, err)
	}
	return a.insertQuestion(ctx, exec, quizID, maxOrder+1, question)
}

// ReplaceQuestion implements domain.CatalogAuthoringRepository. The question
// keeps its id and order; its answers are replaced wholesale.
func (a *CatalogDatabaseAdapter) ReplaceQuestion(ctx context.Context, quizID, questionID int64, question *domain.NewQuestion) error {
	exec := GetExecutor(ctx, a.db)
	res, err := exec.ExecContext(ctx,
		exec.Rebind(`UPDATE questions SET text = ? WHERE id = ? AND quiz_id = ?`),
		question.Text, questionID, quizID)
	if err != nil {
		return fmt.Errorf("failed to update question %d: %w", questionID, err)
	}
	if err := expectAffected(res, domain.NewQuestionNotFoundError(questionID)); err != nil {
		return err
	}
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM answers WHERE question_id = ?`), questionID); err != nil {
		return fmt.Errorf("failed to clear answers of question %d: %w", questionID, err)
	}
	return a.insertAnswers(ctx, exec, questionID, question.Answers)
}

// QuestionIDs implements domain.CatalogAuthoringRepository
func (a *CatalogDatabaseAdapter) QuestionIDs(ctx context.Context, quizID int64) ([]int64, error) {
	exec := GetExecutor(ctx, a.db)
	ids := []int64{}
	if err := exec.SelectContext(ctx, &ids,
		exec.Rebind(`SELECT id FROM questions WHERE quiz_id = ? ORDER BY sort_order, id`), quizID); err != nil {
		return nil, fmt.Errorf("failed to list questions of quiz %d: %w", quizID, err)
	}
	return ids, nil
}

// SetQuestionOrders implements domain.CatalogAuthoringRepository. Orders are
// expected to be validated by the caller.
func (a *CatalogDatabaseAdapter) SetQuestionOrders(ctx context.Context, quizID int64, orders map[int64]int) error {
	exec := GetExecutor(ctx, a.db)
	ids := make([]int64, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	query := exec.Rebind(`UPDATE questions SET sort_order = ? WHERE id = ? AND quiz_id = ?`)
	for _, id := range ids {
		res, err := exec.ExecContext(ctx, query, orders[id], id, quizID)
		if err != nil {
			return fmt.Errorf("failed to reorder question %d: %w", id, err)
		}
		if err := expectAffected(res, domain.NewQuestionNotFoundError(id)); err != nil {
			return err
		}
	}
	return nil
}

// DeleteQuiz implements domain.CatalogAuthoringRepository. Results, answers
// and questions of the quiz are removed with it.
func (a *CatalogDatabaseAdapter) DeleteQuiz(ctx context.Context, quizID int64) error {
	exec := GetExecutor(ctx, a.db)
	steps := []struct {
		what  string
		query string
	}{
		{"results", `DELETE FROM quiz_results WHERE quiz_id = ?`},
		{"answers", `DELETE FROM answers WHERE question_id IN (SELECT id FROM questions WHERE quiz_id = ?)`},
		{"questions", `DELETE FROM questions WHERE quiz_id = ?`},
	}
	for _, step := range steps {
		if _, err := exec.ExecContext(ctx, exec.Rebind(step.query), quizID); err != nil {
			return fmt.Errorf("failed to delete %s of quiz %d: %w", step.what, quizID, err)
		}
	}

	res, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM quizzes WHERE id = ?`), quizID)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", quizID, err)
	}
	return expectAffected(res, domain.NewQuizNotFoundError(quizID))
}

func (a *CatalogDatabaseAdapter) insertQuestion(ctx context.Context, exec DBTX, quizID int64, order int, question *domain.NewQuestion) (int64, error) {
	questionID, err := insertReturningID(ctx, exec,
		`INSERT INTO questions (quiz_id, text, sort_order) VALUES (?, ?, ?)`,
		quizID, question.Text, order)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	if err := a.insertAnswers(ctx, exec, questionID, question.Answers); err != nil {
		return 0, err
	}
	return questionID, nil
}

func (a *CatalogDatabaseAdapter) insertAnswers(ctx context.Context, exec DBTX, questionID int64, answers []domain.NewAnswer) error {
	query := exec.Rebind(`INSERT INTO answers (question_id, text, is_correct, sort_order) VALUES (?, ?, ?, ?)`)
	for i, ans := range answers {
		if _, err := exec.ExecContext(ctx, query, questionID, ans.Text, ans.IsCorrect, i+1); err != nil {
			return fmt.Errorf("failed to insert answer for question %d: %w", questionID, err)
		}
	}
	return nil
}
