package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizmaster"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// LatestResultKey addresses the cached most recent attempt of a user on a quiz.
func LatestResultKey(userID string, quizID int64) string {
	return GenerateCacheKey("results", "latest", userID, strconv.FormatInt(quizID, 10))
}
