package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("passphrase"), []byte("0123456789abcdef"))

	sealed, err := Seal(key, []byte(`{"entries":[]}`))
	require.NoError(t, err)
	assert.NotEqual(t, []byte(`{"entries":[]}`), sealed)

	plain, err := Open(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"entries":[]}`), plain)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key := DeriveKey([]byte("correct"), salt)
	other := DeriveKey([]byte("incorrect"), salt)

	sealed, err := Seal(key, []byte("sensitive"))
	require.NoError(t, err)

	_, err = Open(other, sealed)
	assert.Error(t, err)
}

func TestOpen_TruncatedBlob(t *testing.T) {
	key := DeriveKey([]byte("p"), []byte("0123456789abcdef"))
	_, err := Open(key, []byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := RandBytes(SaltLen)
	assert.Equal(t, DeriveKey([]byte("p"), salt), DeriveKey([]byte("p"), salt))
	assert.NotEqual(t, DeriveKey([]byte("p"), salt), DeriveKey([]byte("q"), salt))
}
