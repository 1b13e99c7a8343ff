package tikv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestToolchainVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "exact version",
			input: "1.50.0",
			want:  "1.50.0",
		},
		{
			name:  "trailing newline",
			input: "1.50.0\n",
			want:  "1.50.0",
		},
		{
			name:  "surrounding whitespace",
			input: "  nightly-2021-01-01\t\n",
			want:  "nightly-2021-01-01",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   " \n\t",
			wantErr: true,
		},
		{
			name:    "multiple tokens",
			input:   "1.50.0 extra",
			wantErr: true,
		},
		{
			name:    "multiple lines",
			input:   "1.50.0\n1.51.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToolchainVersion([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrManifest) {
					t.Fatalf("error = %v, want %v", err, ErrManifest)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("version = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerifyContext(t *testing.T) {
	cfg := Default()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, cfg.Manifest), "1.50.0\n")

	problems := VerifyContext(cfg, dir)
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}
}

func TestVerifyContextPinnedVersion(t *testing.T) {
	cfg := Default()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, cfg.Manifest), "1.50.0")

	data, err := os.ReadFile(filepath.Join(dir, cfg.Manifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	version, err := ToolchainVersion(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "1.50.0" {
		t.Fatalf("version = %q, want 1.50.0 and no other version string", version)
	}
}

func TestVerifyContextMissingManifest(t *testing.T) {
	problems := VerifyContext(Default(), t.TempDir())
	if len(problems) != 1 {
		t.Fatalf("problems = %v, want exactly one (missing manifest)", problems)
	}
}

func TestVerifyContextBadManifest(t *testing.T) {
	cfg := Default()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, cfg.Manifest), "1.50.0 trailing junk")

	problems := VerifyContext(cfg, dir)
	if len(problems) != 1 {
		t.Fatalf("problems = %v, want exactly one (invalid manifest)", problems)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
