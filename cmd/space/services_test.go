package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/space-cli/space/internal/model"
)

// TestNewServicesCmd tests the services command creation.
func TestNewServicesCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServicesCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "services" {
			t.Errorf("expected use 'services', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"stdin", "json", "markdown", "output"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestReportFormat tests output format resolution from flags.
func TestReportFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "default is text", args: nil, want: "text"},
		{name: "json flag", args: []string{"--json"}, want: "json"},
		{name: "markdown flag", args: []string{"--markdown"}, want: "markdown"},
		{name: "json and markdown conflict", args: []string{"--json", "--markdown"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := NewServicesCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}

			got, err := reportFormat(cmd)
			if tt.wantErr {
				if !errors.Is(err, errConflictingFormats) {
					t.Fatalf("expected conflicting formats error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected format %q, got %q", tt.want, got)
			}
		})
	}
}

// runServices executes "space services" with the given extra arguments and
// input, returning stdout and the execution error.
func runServices(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"services"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// TestRunServicesCmdStdin tests the services command with --stdin, which
// reads the context from standard input and never touches configuration
// or the history database.
func TestRunServicesCmdStdin(t *testing.T) {
	input := `{
		"project_name": "acme",
		"hash": "abc123",
		"base_domain": "acme.dev",
		"services": {
			"web": {"dns_name": "web.svc", "internal_port": 8080, "url": "http://web.acme.dev"},
			"api": {"dns_name": "api.svc", "internal_port": 9090, "url": "http://api.acme.dev"}
		}
	}`

	t.Run("renders text report with sorted services", func(t *testing.T) {
		output, err := runServices(t, input, "--stdin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := `Project: acme
Hash: abc123
Domain: acme.dev

Services:
  api:
    DNS:  api.svc
    Port: 9090
    URL:  http://api.acme.dev

  web:
    DNS:  web.svc
    Port: 8080
    URL:  http://web.acme.dev

`
		if output != want {
			t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", output, want)
		}
	})

	t.Run("renders empty services message", func(t *testing.T) {
		empty := `{"project_name": "acme", "hash": "abc123", "base_domain": "acme.dev", "services": {}}`

		output, err := runServices(t, empty, "--stdin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Project: acme\nHash: abc123\nDomain: acme.dev\n\nNo services configured.\n"
		if output != want {
			t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", output, want)
		}
	})

	t.Run("fails on malformed input", func(t *testing.T) {
		_, err := runServices(t, "not json", "--stdin")
		if !errors.Is(err, model.ErrMalformedInput) {
			t.Errorf("expected malformed input error, got %v", err)
		}
	})

	t.Run("fails on missing required field", func(t *testing.T) {
		_, err := runServices(t, `{"hash": "abc123", "base_domain": "acme.dev", "services": {}}`, "--stdin")
		if !errors.Is(err, model.ErrMissingField) {
			t.Errorf("expected missing field error, got %v", err)
		}
	})

	t.Run("fails on conflicting format flags", func(t *testing.T) {
		_, err := runServices(t, input, "--stdin", "--json", "--markdown")
		if !errors.Is(err, errConflictingFormats) {
			t.Errorf("expected conflicting formats error, got %v", err)
		}
	})

	t.Run("renders json report", func(t *testing.T) {
		output, err := runServices(t, input, "--stdin", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, `"project_name": "acme"`) {
			t.Errorf("expected JSON output to contain project name, got: %s", output)
		}
	})

	t.Run("renders markdown report", func(t *testing.T) {
		output, err := runServices(t, input, "--stdin", "--markdown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "# Project Services") {
			t.Errorf("expected markdown heading, got: %s", output)
		}
		if !strings.Contains(output, "api.svc") {
			t.Errorf("expected markdown service row, got: %s", output)
		}
	})

	t.Run("writes report to output file", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "reports", "services.txt")

		stdout, err := runServices(t, input, "--stdin", "-o", outputPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "" {
			t.Errorf("expected empty stdout, got: %s", stdout)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report file: %v", err)
		}
		if !strings.Contains(string(content), "Project: acme") {
			t.Errorf("expected report file to contain project header, got: %s", content)
		}
	})
}

// Note: runServicesCmd without --stdin is not executed end to end here.
// That path records history under the XDG data directory, and adrg/xdg
// caches XDG_DATA_HOME at package initialization, so t.Setenv cannot
// redirect it. The config path is covered by the config, project, and
// history package tests instead.
