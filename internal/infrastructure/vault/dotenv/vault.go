// Package dotenv provides a dotenv-based vault implementation for development.
package dotenv

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Vault implements the vault.Vault interface using environment variables.
// Secrets stored at runtime live in memory only.
type Vault struct {
	secrets map[string]string
	mu      sync.RWMutex
}

// NewVault creates a new DotEnv vault instance.
func NewVault() *Vault {
	return &Vault{
		secrets: make(map[string]string),
	}
}

// GetSecret retrieves a secret from environment variables or the in-memory
// store. URIs take the form "dotenv://{KEY}".
func (v *Vault) GetSecret(ctx context.Context, uri string) (string, error) {
	key := strings.TrimPrefix(uri, "dotenv://")

	if value := os.Getenv(key); value != "" {
		return value, nil
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if value, ok := v.secrets[key]; ok {
		return value, nil
	}

	return "", fmt.Errorf("secret not found: %s", key)
}

// StoreSecret stores a secret in memory and returns its URI.
func (v *Vault) StoreSecret(ctx context.Context, key, value string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.secrets[key] = value
	return fmt.Sprintf("dotenv://%s", key), nil
}

// Ping checks if the vault is available (always nil for dotenv).
func (v *Vault) Ping(ctx context.Context) error {
	return nil
}

// Close closes the vault (no-op for dotenv).
func (v *Vault) Close() error {
	return nil
}
