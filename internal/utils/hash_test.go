// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-sync/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)
	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic for the same input")

	// сверяем с прямым вычислением HMAC
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	assert.Equal(t, h.Sum(nil), sum1)
}

func TestHash_WithResponseBody(t *testing.T) {
	InitHasherPool(testHashKey)

	body, err := json.Marshal(models.LastSyncAtResponse{LastSyncAt: "2024-01-01T00:00:00Z"})
	require.NoError(t, err)

	got := hex.EncodeToString(Hash(body))

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
}

func TestHash_DifferentKeys(t *testing.T) {
	body := []byte(`{"accepted":3}`)

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(body))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(body))

	assert.NotEqual(t, hash1, hash2, "different keys must produce different hashes")
}

func TestHashString(t *testing.T) {
	a := HashString("refresh-token", testHashKey)
	b := HashString("refresh-token", testHashKey)
	c := HashString("refresh-token", "other-key")

	assert.Len(t, a, sha256.Size*2)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, HashString("other-token", testHashKey))
}
