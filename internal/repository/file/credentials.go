package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dtroode/ctfboard/internal/model"
)

var _ model.CredentialStore = (*CredentialFile)(nil)

// CredentialFile resolves usernames against a newline-delimited
// `username:secret` file. The file is re-read on every call so credential
// edits take effect without a restart; the store itself never caches.
type CredentialFile struct {
	path string
}

func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{path: path}
}

func (c *CredentialFile) Resolve(ctx context.Context, username string) (string, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return "", fmt.Errorf("failed to open credential file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, secret, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		name = strings.TrimSpace(name)
		secret = strings.TrimSpace(secret)
		if name == "" || secret == "" {
			continue
		}

		if name == username {
			return secret, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}

	return "", model.ErrNotFound
}
