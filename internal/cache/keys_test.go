package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{"without paramsKey", "results", "latest", "user-1", nil, "quizmaster:results:latest:user-1"},
		{"with empty paramsKey", "results", "latest", "user-1", []string{}, "quizmaster:results:latest:user-1"},
		{"with one paramsKey", "results", "latest", "user-1", []string{"42"}, "quizmaster:results:latest:user-1:42"},
		{"with multiple paramsKey", "catalog", "quiz", "7", []string{"active", "v2"}, "quizmaster:catalog:quiz:7:active_v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestLatestResultKey(t *testing.T) {
	assert.Equal(t, "quizmaster:results:latest:user-1:42", LatestResultKey("user-1", 42))
	assert.NotEqual(t, LatestResultKey("user-1", 42), LatestResultKey("user-14", 2))
}
