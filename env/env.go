package env

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Variable names read and written during startup.
const (
	// BonsaiURL is the primary cluster URL source.
	BonsaiURL = "BONSAI_URL"
	// ElasticsearchURL is the fallback source and the variable the search
	// client reads its connection URL from.
	ElasticsearchURL = "ELASTICSEARCH_URL"
	// BulkConcurrency caps concurrent bulk reindex writes.
	BulkConcurrency = "BULK_CONCURRENCY"
	// RedisURL points at the indexing queue backend.
	RedisURL = "REDIS_URL"
)

// Lookup abstracts where variables are read from.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// Setter abstracts where variables are written to.
type Setter interface {
	Set(key, value string) error
}

// Environ lists all variables of a source as a map.
type Environ interface {
	Environ() map[string]string
}

// Process reads and writes the process environment.
type Process struct{}

// OS returns a source backed by the process environment.
func OS() Process {
	return Process{}
}

// Lookup implements Lookup.
func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set implements Setter.
func (Process) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("failed to set environment variable %s: %w", key, err)
	}
	return nil
}

// Environ implements Environ.
func (Process) Environ() map[string]string {
	return SliceToMap(os.Environ())
}

// Map is an in-memory source. The zero value is not usable; use make or a
// literal.
type Map map[string]string

// Lookup implements Lookup.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements Setter.
func (m Map) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("environment variable name cannot be empty")
	}
	m[key] = value
	return nil
}

// Environ implements Environ.
func (m Map) Environ() map[string]string {
	return copyEnv(m)
}

// Get returns the value of key or "" when unset.
func Get(src Lookup, key string) string {
	v, _ := src.Lookup(key)
	return v
}

// MapToSlice converts an env map into KEY=VALUE entries sorted by key.
func MapToSlice(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(env))
	for _, k := range keys {
		result = append(result, k+"="+env[k])
	}
	return result
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed rows.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		key, value, ok := strings.Cut(envVar, "=")
		if !ok || key == "" {
			continue
		}
		result[key] = value
	}
	return result
}

func copyEnv(env map[string]string) map[string]string {
	clone := make(map[string]string, len(env))
	for k, v := range env {
		clone[k] = v
	}
	return clone
}
