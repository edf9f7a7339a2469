package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSecretProviderResolve(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "db")
	if err := os.WriteFile(present, []byte("postgres://x@db/farm\r\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	absent := filepath.Join(dir, "absent")

	got, err := NewFileSecretProvider().Resolve(context.Background(), []string{present, absent})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got[present] != "postgres://x@db/farm" {
		t.Errorf("Resolve()[present] = %q, want trimmed value", got[present])
	}
	if _, ok := got[absent]; ok {
		t.Error("missing file should be omitted from the result")
	}
}

func TestFileSecretProviderReadError(t *testing.T) {
	boom := errors.New("io failure")
	p := &FileSecretProvider{readFile: func(string) ([]byte, error) { return nil, boom }}

	_, err := p.Resolve(context.Background(), []string{"/x"})
	if !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want %v", err, boom)
	}
}

func TestFileSecretProviderNotExistIsSkipped(t *testing.T) {
	p := &FileSecretProvider{readFile: func(string) ([]byte, error) { return nil, fs.ErrNotExist }}

	got, err := p.Resolve(context.Background(), []string{"/x"})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resolve() = %v, want empty", got)
	}
}

func TestFileSecretProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSecretProvider().Resolve(ctx, []string{"/x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Resolve() error = %v, want context.Canceled", err)
	}
}
