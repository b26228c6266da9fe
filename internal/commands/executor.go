package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/space-cli/space/internal/model"
)

// Executor runs custom commands with the project context wired in.
type Executor struct {
	workDir string
	stdout  io.Writer
	stderr  io.Writer
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithStdout redirects the child's stdout (default: os.Stdout).
func WithStdout(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.stdout = w
	}
}

// WithStderr redirects the child's stderr (default: os.Stderr).
func WithStderr(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.stderr = w
	}
}

// NewExecutor creates an Executor rooted at workDir.
func NewExecutor(workDir string, opts ...ExecutorOption) *Executor {
	e := &Executor{
		workDir: workDir,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes the command at cmdPath with the given arguments.
// The project context is marshaled to JSON and written to the child's
// stdin; the same data is exposed as SPACE_* environment variables.
// Cancelling ctx kills the child process.
func (e *Executor) Run(ctx context.Context, pctx *model.ProjectContext, cmdPath string, args []string) error {
	contextJSON, err := json.MarshalIndent(pctx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}

	interpreter, leading := Interpreter(cmdPath)

	var cmdArgs []string
	if interpreter == cmdPath {
		// Direct execution via shebang
		cmdArgs = args
	} else {
		cmdArgs = append(leading, cmdPath)
		cmdArgs = append(cmdArgs, args...)
	}

	cmd := exec.CommandContext(ctx, interpreter, cmdArgs...)
	cmd.Dir = e.workDir
	cmd.Env = append(os.Environ(), Environ(pctx)...)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	_, _ = stdin.Write(contextJSON)
	_ = stdin.Close()

	return cmd.Wait()
}

// Environ returns the SPACE_* environment variables describing the context.
// Per-service variables use the upper-cased service name with dashes
// replaced by underscores, e.g. SPACE_SERVICE_API_SERVER_URL.
func Environ(pctx *model.ProjectContext) []string {
	env := []string{
		"SPACE_WORKDIR=" + pctx.WorkDir,
		"SPACE_PROJECT_NAME=" + pctx.ProjectName,
		"SPACE_HASH=" + pctx.Hash,
		"SPACE_BASE_DOMAIN=" + pctx.BaseDomain,
	}

	for _, name := range pctx.SortedServiceNames() {
		svc := pctx.Services[name]
		prefix := "SPACE_SERVICE_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		env = append(env,
			prefix+"_DNS_NAME="+svc.DNSName,
			prefix+"_PORT="+strconv.Itoa(svc.InternalPort),
			prefix+"_URL="+svc.URL,
		)
	}

	return env
}
