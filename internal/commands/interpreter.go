package commands

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// Interpreter returns the interpreter command and leading arguments for a
// command file, based on its extension. For unknown extensions the file
// itself is returned, relying on a shebang line.
func Interpreter(path string) (string, []string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return "python3", nil
	case ".js":
		return "node", nil
	case ".ts":
		return typescriptRunner()
	case ".go":
		return "go", []string{"run"}
	case ".rb":
		return "ruby", nil
	case ".pl":
		return "perl", nil
	case ".sh", "":
		return "sh", nil
	default:
		return path, nil
	}
}

// typescriptRunner probes for common TypeScript runners in PATH order of
// preference, falling back to npx.
func typescriptRunner() (string, []string) {
	if _, err := exec.LookPath("bun"); err == nil {
		return "bun", []string{"run"}
	}
	if _, err := exec.LookPath("tsx"); err == nil {
		return "tsx", nil
	}
	if _, err := exec.LookPath("ts-node"); err == nil {
		return "ts-node", nil
	}
	return "npx", []string{"tsx"}
}
