package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/space-cli/space/internal/model"
)

// testProjectContext returns a minimal context for executor tests.
func testProjectContext(workDir string) *model.ProjectContext {
	return &model.ProjectContext{
		WorkDir:     workDir,
		ProjectName: "acme",
		Hash:        "abc123",
		BaseDomain:  "space.local",
		Services:    map[string]model.ServiceInfo{},
	}
}

// writeScript creates a shell script command and returns its path.
func writeScript(t *testing.T, workDir, name, body string) string {
	t.Helper()

	dir := filepath.Join(workDir, filepath.FromSlash(Dir))
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("failed to create commands dir: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

// TestExecutorRun runs real shell commands; skipped on Windows.
func TestExecutorRun(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("shell commands are not available on windows")
	}

	t.Run("pipes context JSON to stdin", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		path := writeScript(t, workDir, "dump.sh", "cat\n")

		var out bytes.Buffer
		e := NewExecutor(workDir, WithStdout(&out), WithStderr(&out))

		if err := e.Run(context.Background(), testProjectContext(workDir), path, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), `"project_name": "acme"`) {
			t.Errorf("expected context JSON on stdin, got:\n%s", out.String())
		}
	})

	t.Run("exposes SPACE_* environment", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		path := writeScript(t, workDir, "env.sh", "echo \"$SPACE_HASH\"\n")

		var out bytes.Buffer
		e := NewExecutor(workDir, WithStdout(&out), WithStderr(&out))

		if err := e.Run(context.Background(), testProjectContext(workDir), path, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.TrimSpace(out.String()) != "abc123" {
			t.Errorf("expected hash 'abc123', got %q", strings.TrimSpace(out.String()))
		}
	})

	t.Run("propagates non-zero exit", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		path := writeScript(t, workDir, "fail.sh", "exit 3\n")

		e := NewExecutor(workDir, WithStdout(&bytes.Buffer{}), WithStderr(&bytes.Buffer{}))

		if err := e.Run(context.Background(), testProjectContext(workDir), path, nil); err == nil {
			t.Error("expected error for failing command")
		}
	})

	t.Run("passes arguments through", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		path := writeScript(t, workDir, "args.sh", "echo \"$@\"\n")

		var out bytes.Buffer
		e := NewExecutor(workDir, WithStdout(&out), WithStderr(&out))

		if err := e.Run(context.Background(), testProjectContext(workDir), path, []string{"--env", "staging"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "--env staging") {
			t.Errorf("expected arguments in output, got %q", out.String())
		}
	})
}
