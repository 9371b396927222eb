package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pod-sync/models"
)

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return &ServerError{
		StatusCode: status,
		Message:    errorMessage(resp.Body()),
		kind:       statusKind(status),
	}
}

func statusKind(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}

	if status >= http.StatusInternalServerError {
		return ErrServerError
	}
	// other 4xx and unexpected 3xx/1xx are treated as a rejected request
	return ErrBadRequest
}

// errorMessage extracts errorMessage from the body, falling back to the raw
// text.
func errorMessage(body []byte) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.ErrorMessage != "" {
		return payload.ErrorMessage
	}
	return strings.TrimSpace(string(body))
}
