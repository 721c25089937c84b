package credentials

import (
	"context"
	"fmt"

	"healthchat/internal/cryptox"
)

// SealedBackend encrypts values with AES-GCM before delegating to an inner
// Backend. It stands in for a platform secure store: the sealing key is
// derived from an installation secret kept outside the backing database
// (see LoadOrCreateSealingKey).
type SealedBackend struct {
	inner Backend
	key   []byte
}

func NewSealedBackend(inner Backend, key []byte) *SealedBackend {
	return &SealedBackend{inner: inner, key: key}
}

func (b *SealedBackend) Get(ctx context.Context, key string) ([]byte, error) {
	blob, err := b.inner.Get(ctx, key)
	if err != nil || blob == nil {
		return nil, err
	}
	plaintext, err := cryptox.Open(blob, b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials[%s]: %w", key, err)
	}
	return plaintext, nil
}

func (b *SealedBackend) Set(ctx context.Context, key string, value []byte) error {
	blob, err := cryptox.Seal(value, b.key)
	if err != nil {
		return fmt.Errorf("failed to seal credentials[%s]: %w", key, err)
	}
	return b.inner.Set(ctx, key, blob)
}

func (b *SealedBackend) Delete(ctx context.Context, key string) error {
	return b.inner.Delete(ctx, key)
}
