package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKnownVectors(t *testing.T) {
	tests := []struct {
		algorithm HashAlgorithm
		input     string
		want      string
	}{
		{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm)+"/"+tt.input, func(t *testing.T) {
			h, err := NewHasher(tt.algorithm)
			require.NoError(t, err)

			streamed, err := h.HashReader(strings.NewReader(tt.input), make([]byte, 2))
			require.NoError(t, err)
			assert.Equal(t, tt.want, streamed)
		})
	}
}

func TestBlake2bDigestLength(t *testing.T) {
	h, err := NewHasher(BLAKE2b)
	require.NoError(t, err)

	digest, err := h.HashReader(strings.NewReader("payload"), nil)
	require.NoError(t, err)
	assert.Len(t, digest, 64)

	sha, err := DefaultHasher().HashReader(strings.NewReader("payload"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, sha, digest)
}

func TestNewHasherRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewHasher("md5")
	assert.Error(t, err)
}

func TestDefaultHasher(t *testing.T) {
	assert.Equal(t, SHA256, DefaultHasher().Algorithm())
}
