// Package auth provides the bearer token used against the metrics API.
// Providers are tried in order; a missing token is not fatal because the
// dashboard can run on sample data.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// TokenEnvVar is the environment variable holding the API token.
const TokenEnvVar = "BPMDASH_TOKEN"

// ErrNoToken indicates no provider could supply a token.
var ErrNoToken = errors.New("no API token available")

// TokenProvider defines the interface for obtaining an API token.
type TokenProvider interface {
	GetToken() (string, error)
}

// FileProvider reads the token from a file, ignoring surrounding whitespace.
type FileProvider struct {
	Path string
}

// GetToken reads and trims the token file.
func (f *FileProvider) GetToken() (string, error) {
	if f.Path == "" {
		return "", errors.New("token file not configured")
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.Path)
	}
	return token, nil
}

// EnvProvider obtains tokens from the BPMDASH_TOKEN environment variable.
type EnvProvider struct{}

// GetToken reads the BPMDASH_TOKEN environment variable.
func (e *EnvProvider) GetToken() (string, error) {
	token := strings.TrimSpace(os.Getenv(TokenEnvVar))
	if token == "" {
		return "", errors.New(TokenEnvVar + " environment variable not set or empty")
	}
	return token, nil
}

// GetToken tries the token file first and falls back to the environment.
// The returned error wraps ErrNoToken and lists why each provider failed.
func GetToken(tokenFile string) (string, error) {
	providers := []TokenProvider{
		&FileProvider{Path: tokenFile},
		&EnvProvider{},
	}

	var reasons []string
	for _, p := range providers {
		token, err := p.GetToken()
		if err == nil {
			return token, nil
		}
		reasons = append(reasons, err.Error())
	}

	return "", fmt.Errorf("%w: %s", ErrNoToken, strings.Join(reasons, "; "))
}
