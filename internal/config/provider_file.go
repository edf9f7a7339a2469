package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// FileSecretProvider implements SecretProvider by reading each reference as a
// file path, the convention used by Docker and Kubernetes secret mounts.
type FileSecretProvider struct {
	readFile func(name string) ([]byte, error)
}

// NewFileSecretProvider creates a provider reading from the local filesystem.
func NewFileSecretProvider() *FileSecretProvider {
	return &FileSecretProvider{readFile: os.ReadFile}
}

// Resolve reads each path. Trailing newlines are trimmed. Missing files are
// omitted from the result; any other read failure is returned.
func (p *FileSecretProvider) Resolve(ctx context.Context, refs []string) (map[string]string, error) {
	result := make(map[string]string, len(refs))
	for _, path := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := p.readFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		result[path] = strings.TrimRight(string(data), "\r\n")
	}
	return result, nil
}
