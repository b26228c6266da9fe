package commands

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dir is the project-relative directory custom commands live in.
const Dir = ".space/commands"

// ErrNotFound is returned when no custom command matches the requested name.
var ErrNotFound = errors.New("custom command not found")

// extensions lists the recognized command file extensions, in lookup order.
// The empty string covers extensionless executables with a shebang.
var extensions = []string{"", ".sh", ".py", ".js", ".ts", ".go", ".rb", ".pl"}

// Find looks up a custom command by name under workDir.
// It returns the command file path, or ErrNotFound when no candidate exists.
// Extensionless candidates must carry an executable bit.
func Find(workDir, name string) (string, error) {
	commandsDir := filepath.Join(workDir, filepath.FromSlash(Dir))

	if _, err := os.Stat(commandsDir); os.IsNotExist(err) {
		return "", ErrNotFound
	}

	for _, ext := range extensions {
		path := filepath.Join(commandsDir, name+ext)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			continue
		}
		if ext == "" && info.Mode()&0111 == 0 {
			continue
		}
		return path, nil
	}

	return "", ErrNotFound
}

// List returns the names of all custom commands under workDir, sorted and
// de-duplicated across extensions. Hidden files and READMEs are skipped.
func List(workDir string) []string {
	commandsDir := filepath.Join(workDir, filepath.FromSlash(Dir))

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.EqualFold(name, "README.md") {
			continue
		}

		cmdName := strings.TrimSuffix(name, filepath.Ext(name))
		if !seen[cmdName] {
			seen[cmdName] = true
			names = append(names, cmdName)
		}
	}

	sort.Strings(names)
	return names
}
