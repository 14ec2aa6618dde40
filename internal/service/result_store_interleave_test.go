package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"quizmaster/internal/cache"
	"quizmaster/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// versionedMemoryCache applies the same rule as the Redis script: a write
// only lands when its version sorts after the stored one.
type versionedMemoryCache struct {
	mu       sync.Mutex
	values   map[string]string
	versions map[string]string
}

func newVersionedMemoryCache() *versionedMemoryCache {
	return &versionedMemoryCache{values: map[string]string{}, versions: map[string]string{}}
}

func (c *versionedMemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *versionedMemoryCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	delete(c.versions, key)
	return nil
}

func (c *versionedMemoryCache) SetIfNewer(ctx context.Context, key, version, value string, expiration time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.versions[key]; ok && current >= version {
		return false, nil
	}
	c.values[key] = value
	c.versions[key] = version
	return true, nil
}

func (c *versionedMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	delete(c.versions, key)
	return nil
}

func (c *versionedMemoryCache) Ping(ctx context.Context) error { return nil }

// pausingResultRepository keeps rows in memory. When pause is set, the next
// ListFor takes its snapshot, signals snapshotted and waits for resume.
type pausingResultRepository struct {
	mu          sync.Mutex
	rows        []*domain.QuizResult
	pause       bool
	snapshotted chan struct{}
	resume      chan struct{}
}

func (r *pausingResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, result)
	return nil
}

func (r *pausingResultRepository) ListFor(ctx context.Context, userID string, quizID int64) ([]*domain.QuizResult, error) {
	r.mu.Lock()
	var out []*domain.QuizResult
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID && r.rows[i].QuizID == quizID {
			out = append(out, r.rows[i])
		}
	}
	pause := r.pause
	r.pause = false
	r.mu.Unlock()

	if pause {
		close(r.snapshotted)
		<-r.resume
	}
	return out, nil
}

func (r *pausingResultRepository) GetByID(ctx context.Context, resultID string) (*domain.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == resultID {
			return row, nil
		}
	}
	return nil, domain.NewResultNotFoundError("no such result")
}

func TestResultStore_SlowLatestDoesNotHideNewerSave(t *testing.T) {
	ctx := context.Background()
	memCache := newVersionedMemoryCache()
	repo := &pausingResultRepository{snapshotted: make(chan struct{}), resume: make(chan struct{})}
	store := NewResultStore(repo, &MockTransactionManager{},
		NewLatestResultCache(memCache, time.Minute, newTestMetrics(), zap.NewNop()), zap.NewNop())

	first, second := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
	store.now = func() time.Time { return first }
	firstResult, err := store.Save(ctx, domain.Grade(geographyKey(), domain.Submission{}), "user-1", 1)
	require.NoError(t, err)

	// Entry expires; the next reader has to go to the store.
	require.NoError(t, memCache.Delete(ctx, cache.LatestResultKey("user-1", 1)))

	repo.mu.Lock()
	repo.pause = true
	repo.mu.Unlock()

	type latestCall struct {
		result *domain.QuizResult
		err    error
	}
	done := make(chan latestCall, 1)
	go func() {
		r, err := store.Latest(ctx, "user-1", 1)
		done <- latestCall{r, err}
	}()

	<-repo.snapshotted
	store.now = func() time.Time { return second }
	secondResult, err := store.Save(ctx, domain.Grade(geographyKey(), domain.Submission{10: {100, 101}, 11: {110}}), "user-1", 1)
	require.NoError(t, err)
	close(repo.resume)

	slow := <-done
	require.NoError(t, slow.err)
	assert.Equal(t, firstResult.ID, slow.result.ID, "the in-flight read answers from its own snapshot")

	got, err := store.Latest(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.Equal(t, secondResult.ID, got.ID)
	assert.Equal(t, 100.0, got.Score)
}

func TestResultStore_SaveWritesThrough(t *testing.T) {
	ctx := context.Background()
	memCache := newVersionedMemoryCache()
	repo := &pausingResultRepository{}
	store := NewResultStore(repo, &MockTransactionManager{},
		NewLatestResultCache(memCache, time.Minute, newTestMetrics(), zap.NewNop()), zap.NewNop())

	saved, err := store.Save(ctx, domain.Grade(geographyKey(), domain.Submission{11: {110}}), "user-1", 1)
	require.NoError(t, err)

	_, err = memCache.Get(ctx, cache.LatestResultKey("user-1", 1))
	require.NoError(t, err, "save fills the cache")

	// Hide the row so only the cache can answer.
	repo.mu.Lock()
	repo.rows = nil
	repo.mu.Unlock()

	got, err := store.Latest(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
}
