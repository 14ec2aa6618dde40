package service

import (
	"context"

	"quizmaster/internal/domain"
	"quizmaster/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const corruptResultWarning = "The details of this result could not be read. Only the summary is shown."

// Rehydrator turns stored results back into display-ready views by joining
// their ids against the current catalog.
type Rehydrator struct {
	catalog domain.CatalogRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewRehydrator(catalog domain.CatalogRepository, m *metrics.Metrics, logger *zap.Logger) *Rehydrator {
	return &Rehydrator{catalog: catalog, metrics: m, logger: logger}
}

// Rehydrate reconstructs result for display. When the stored details are
// corrupt it returns a view with no details together with a CORRUPT_DATA
// error; callers must show the view with a warning.
func (r *Rehydrator) Rehydrate(ctx context.Context, result *domain.QuizResult) (*domain.ResultView, error) {
	outcome, shape, err := domain.DecodeOutcome(result.Details)
	if err != nil {
		r.metrics.Rehydrations.WithLabelValues(metrics.ShapeCorrupt).Inc()
		r.logger.Warn("Stored quiz result details are corrupt",
			zap.String("result_id", result.ID),
			zap.Error(err))
		return domain.NewCorruptResultView(result, corruptResultWarning), err
	}

	questionIDs, answerIDs := domain.ReferencedIDs(outcome)

	var questionTexts map[int64]string
	var answerTexts map[int64]domain.AnswerText
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		texts, err := r.catalog.QuestionTexts(gCtx, questionIDs)
		questionTexts = texts
		return err
	})
	g.Go(func() error {
		texts, err := r.catalog.AnswerTexts(gCtx, answerIDs)
		answerTexts = texts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, asStorageError(err, "failed to resolve result texts")
	}

	stale := countMissing(questionIDs, questionTexts) + domain.UnresolvedAnswers(outcome, answerTexts)
	if stale > 0 {
		r.metrics.StaleReferences.Add(float64(stale))
		r.logger.Debug("Result references ids no longer in the catalog",
			zap.String("result_id", result.ID),
			zap.Int("stale", stale))
	}
	r.metrics.Rehydrations.WithLabelValues(shape.String()).Inc()

	return domain.NewResultView(result, outcome, questionTexts, answerTexts), nil
}

func countMissing(ids []int64, texts map[int64]string) int {
	missing := 0
	for _, id := range ids {
		if _, ok := texts[id]; !ok {
			missing++
		}
	}
	return missing
}
