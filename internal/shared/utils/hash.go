package utils

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA256  HashAlgorithm = "sha256"
	SHA512  HashAlgorithm = "sha512"
	BLAKE2b HashAlgorithm = "blake2b" // 256-bit digest
)

// Hasher computes digests incrementally over streams
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm HashAlgorithm) (*Hasher, error) {
	h := &Hasher{algorithm: algorithm}
	if _, err := h.New(); err != nil {
		return nil, err
	}
	return h, nil
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return &Hasher{algorithm: SHA256}
}

// Algorithm returns the configured algorithm
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// New returns a fresh hash.Hash for the configured algorithm
func (h *Hasher) New() (hash.Hash, error) {
	switch h.algorithm {
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case BLAKE2b:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", h.algorithm)
	}
}

// HashReader consumes r and returns the hex digest
func (h *Hasher) HashReader(r io.Reader, buf []byte) (string, error) {
	digest, err := h.New()
	if err != nil {
		return "", err
	}
	if _, err := io.CopyBuffer(digest, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
