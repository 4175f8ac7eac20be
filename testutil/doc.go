// Package testutil provides helpers shared by the bonsai test suites.
//
// This package includes helpers for:
//   - Capturing everything cliout prints (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing fixture files such as bonsai.yaml or .env (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestResolveCommand(t *testing.T) {
//	    dir := testutil.TempDir(t)
//	    cfg := testutil.WriteFile(t, dir, "bonsai.yaml", "targetVar: CLIENT_URL\n")
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return run("--config", cfg, "resolve")
//	    })
//	}
package testutil
