// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"io"
	"net/http"

	"github.com/MKhiriev/autobrain/internal/logger"
)

// HashHeader carries the hex HMAC-SHA256 of a document body.
const HashHeader = "HashSHA256"

// checkHash compares the HashSHA256 request header with the HMAC of the
// (already decompressed) body. Requests without the header pass, as do all
// requests when no hash key is configured.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sent := r.Header.Get(HashHeader)
		if h.hasher == nil || sent == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		computed := h.hasher.Sum(body)
		if !hmac.Equal([]byte(computed), []byte(sent)) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", sent).
				Str("hashed body", computed).
				Msg("hashes are not equal")
			http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
