package kv

import (
	"context"

	"moodlog/internal/cryptox"
)

// saltKey stores the key-derivation salt. The salt sits next to the sealed
// blobs but is itself never encrypted.
const saltKey = "salt"

// SealedStorage decorates a Storage so every value is AES-GCM sealed on Save
// and opened on Load. A wrong key surfaces as a Load error, which callers
// treat like any other failed load.
type SealedStorage struct {
	inner Storage
	key   []byte
}

func NewSealedStorage(inner Storage, key []byte) *SealedStorage {
	return &SealedStorage{inner: inner, key: key}
}

// EnsureSalt loads the stored key-derivation salt, creating and persisting a
// fresh random one on first use.
func EnsureSalt(ctx context.Context, s Storage) ([]byte, error) {
	salt, err := s.Load(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if salt != nil {
		return salt, nil
	}
	salt = cryptox.RandBytes(cryptox.SaltLen)
	if err := s.Save(ctx, saltKey, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func (s *SealedStorage) Load(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Load(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	return cryptox.Open(s.key, sealed)
}

func (s *SealedStorage) Save(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(s.key, value)
	if err != nil {
		return err
	}
	return s.inner.Save(ctx, key, sealed)
}

func (s *SealedStorage) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
