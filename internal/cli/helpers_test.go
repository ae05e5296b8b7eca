package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// setupTest isolates config, captures command output, and resets flag
// state so tests don't leak into each other.
func setupTest(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("ENTITLE_CONFIG_DIR", t.TempDir())
	t.Setenv("ENTITLE_EXTRA_WORDS", "")
	t.Setenv("ENTITLE_COLOR", "")

	buf := &bytes.Buffer{}
	prevOut := outWriter
	prevIn := inReader
	outWriter = buf

	resetFlags := func() {
		jsonOutput = false
		noColor = false
		verbose = false
		quiet = false
		lexiconPath = ""
		_ = rootCmd.Flags().Set("version", "false")
		_ = configInitCmd.Flags().Set("force", "false")
	}
	resetFlags()

	t.Cleanup(func() {
		outWriter = prevOut
		inReader = prevIn
		resetFlags()
	})
	return buf
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	if args == nil {
		// SetArgs(nil) falls back to os.Args, which holds test flags.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}
