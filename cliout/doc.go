// Package cliout provides structured output formatting for the bonsai CLI.
//
// # Basic Usage
//
//	cliout.Header("Cluster URL")
//	cliout.Label("Source", "primary")
//	cliout.Success("Published %s", "ELASTICSEARCH_URL")
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Use Print to honour the selected format:
//
//	return cliout.Print(result, func() {
//		cliout.Label("URL", result.Redacted)
//	})
//
// Colors are only emitted when stdout is a terminal and NO_COLOR is unset.
package cliout
