// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes hex HMAC-SHA256 sums under one key with pooled hash
// instances. The server keeps one per handler.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns nil for an empty key: integrity checks are off.
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}

	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, []byte(hashKey))
			},
		},
	}
}

// Sum returns the hex HMAC-SHA256 of data.
func (h *Hasher) Sum(data []byte) string {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()
	mac.Write(data)
	sum := mac.Sum(nil)
	h.pool.Put(mac)

	return hex.EncodeToString(sum)
}

// HashBytes returns the hex HMAC-SHA256 of data under hashKey without
// pooling. The client uses it to sign document bodies.
func HashBytes(data []byte, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
