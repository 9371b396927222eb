package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the server
// hash key. Must be initialized via InitHasherPool before Hash is used.
var hasherPool sync.Pool

// InitHasherPool keys every pooled HMAC-SHA256 hasher with hashKey. The
// sync server calls it once at startup; the pooled hashers sign response
// bodies.
//
// Example usage:
//
//	utils.InitHasherPool(cfg.Auth.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest of data with a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded HMAC-SHA256 of data under hashKey. It
// does not touch the pool, so it is safe to use with a key other than the
// one the pool was initialized with.
//
// Example usage:
//
//	stored := utils.HashString(refreshToken, cfg.Auth.HashKey)
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
