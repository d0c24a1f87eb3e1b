package cache

import "strings"

const (
	GlobalKeyPrefix = "examgen"
)

// Service and object names used in keys.
const (
	ServiceGeneration = "generation"
	ServiceAuth       = "auth"

	ObjectDraft   = "draft"
	ObjectRevoked = "revoked"
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

// DraftKey is where a generated batch waits for the preview page.
func DraftKey(draftID string) string {
	return GenerateCacheKey(ServiceGeneration, ObjectDraft, draftID)
}

// RevokedTokenKey marks a logged-out token id.
func RevokedTokenKey(tokenID string) string {
	return GenerateCacheKey(ServiceAuth, ObjectRevoked, tokenID)
}
