package env

import (
	"strings"
)

// ClusterPrefixes are the variable prefixes that may carry cluster settings.
var ClusterPrefixes = []string{"BONSAI_", "ELASTICSEARCH_"}

// secretMarkers are key fragments that name a credential.
var secretMarkers = []string{"PASSWORD", "PASSWD", "SECRET", "TOKEN", "KEY", "AUTH", "CREDENTIAL"}

// IsSecretKey reports whether the variable name suggests its value is a
// credential. Matching is case-insensitive on any fragment of the name, so
// ELASTICSEARCH_API_KEY and BONSAI_AUTH_HEADER both match.
func IsSecretKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, marker := range secretMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// FilterByPrefix returns environment variables matching a prefix.
// The prefix matching is case-insensitive for keys.
// Returns a new map containing only the matching entries.
//
// Example:
//
//	envVars := map[string]string{
//		"BONSAI_URL": "https://...",
//		"DATABASE_URL": "postgres://...",
//	}
//	bonsaiVars := env.FilterByPrefix(envVars, "BONSAI_")
//	// Returns: {"BONSAI_URL": "https://..."}
func FilterByPrefix(envVars map[string]string, prefixes ...string) map[string]string {
	result := make(map[string]string)
	if envVars == nil {
		return result
	}

	for k, v := range envVars {
		upper := strings.ToUpper(k)
		for _, prefix := range prefixes {
			if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
				result[k] = v
				break
			}
		}
	}

	return result
}
