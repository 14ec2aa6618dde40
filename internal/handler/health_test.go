package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizmaster/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

type fakeCache struct{ pingErr error }

func (c fakeCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (c fakeCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return nil
}

func (c fakeCache) SetIfNewer(ctx context.Context, key, version, value string, expiration time.Duration) (bool, error) {
	return true, nil
}

func (c fakeCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c fakeCache) Ping(ctx context.Context) error {
	return c.pingErr
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		h          *handler.HealthHandler
		wantStatus int
		wantCache  string
	}{
		{"healthy without cache", handler.NewHealthHandler(fakePinger{}, nil, zap.NewNop()), http.StatusOK, "disabled"},
		{"cache down is degraded", handler.NewHealthHandler(fakePinger{}, fakeCache{pingErr: errors.New("down")}, zap.NewNop()), http.StatusOK, "unavailable"},
		{"database down", handler.NewHealthHandler(fakePinger{err: errors.New("down")}, fakeCache{}, zap.NewNop()), http.StatusServiceUnavailable, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/healthz", tt.h.Check)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCache, body["cache"])
		})
	}
}
