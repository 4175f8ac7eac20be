// Package env reads and publishes the environment variables that carry the
// search cluster connection URL.
//
// The package includes:
//   - Variable names (BonsaiURL, ElasticsearchURL, BulkConcurrency, RedisURL)
//   - Lookup sources (OS for the process environment, Map for tests and files)
//   - Setter for publishing the resolved URL
//   - .env file loading (ReadFile, LoadFile)
//   - Format conversion (MapToSlice, SliceToMap) and prefix filtering
//
// # Usage
//
//	if err := env.LoadFile(".env"); err != nil {
//		return err
//	}
//	src := env.OS()
//	primary, _ := src.Lookup(env.BonsaiURL)
//
// # .env Files
//
// Files are parsed with godotenv: KEY=value lines, # comments, an optional
// "export " prefix, and single or double quoted values. LoadFile never
// overwrites a variable that is already set in the process environment.
package env
