package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
)

const hashHeader = "HashSHA256"

// withHashing checks the HashSHA256 header of a request against the HMAC
// of its body and signs every response body the same way. Requests without
// the header pass unchecked.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if sent := r.Header.Get(hashHeader); sent != "" {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			hashedBody := hex.EncodeToString(utils.Hash(body))
			if !hmac.Equal([]byte(hashedBody), []byte(sent)) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", sent).
					Str("hashed body", hashedBody).
					Msg("hashes are not equal")
				utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
				return
			}
		}

		bw := &bufferedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		w.Header().Set(hashHeader, hex.EncodeToString(utils.Hash(bw.body.Bytes())))
		if err := bw.flush(); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response")
		}
	})
}
