// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/app"
)

var (
	// ErrAuthExpired means the credential was rejected and one refresh did
	// not recover it. The user has to sign in again.
	ErrAuthExpired = errors.New("authentication expired")
	// ErrNotSignedIn means no credential is stored.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrNoNetwork means the server could not be reached.
	ErrNoNetwork = errors.New("no network")
	// ErrServerUnavailable means the server answered with a 5xx status.
	ErrServerUnavailable = errors.New("server unavailable")
	// ErrServerRejected means the server refused the request with a 4xx
	// status other than 401.
	ErrServerRejected = errors.New("server rejected the request")
	// ErrMalformedResponse means a response could not be decoded.
	ErrMalformedResponse = errors.New("malformed server response")
	// ErrLocalStoreUnavailable means the local database failed.
	ErrLocalStoreUnavailable = errors.New("local store unavailable")
	// ErrSyncCancelled means the cycle was cancelled, e.g. by sign out.
	ErrSyncCancelled = errors.New("sync cancelled")

	// ErrInvalidData means a local mutation was rejected before reaching
	// the store.
	ErrInvalidData = errors.New("invalid data")
)

// Errors of the reference sync server.
var (
	ErrWrongPassword           = errors.New("wrong login or password")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// SyncError is the classified failure of a domain or a whole cycle. It
// matches its Kind and the underlying error with [errors.Is].
type SyncError struct {
	Kind error
	// Message is the server's errorMessage for rejected requests.
	Message string
	Err     error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *SyncError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// UserMessage returns the text to show for the failure. Transient failures
// return "".
func (e *SyncError) UserMessage() string {
	switch {
	case errors.Is(e.Kind, ErrAuthExpired), errors.Is(e.Kind, ErrNotSignedIn):
		return app.MsgSignInAgain
	case errors.Is(e.Kind, ErrServerRejected):
		if e.Message != "" {
			return e.Message
		}
		return app.MsgSyncRejected
	}
	return ""
}

// classifyError maps adapter, store and context errors onto the service
// taxonomy. Errors that did not come from the adapter or a context are
// local store failures.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var classified *SyncError
	if errors.As(err, &classified) {
		return err
	}

	syncErr := &SyncError{Err: err}
	switch {
	case errors.Is(err, ErrAuthExpired), errors.Is(err, adapter.ErrUnauthorized):
		syncErr.Kind = ErrAuthExpired
	case errors.Is(err, ErrNotSignedIn):
		syncErr.Kind = ErrNotSignedIn
	case errors.Is(err, context.Canceled):
		syncErr.Kind = ErrSyncCancelled
	case errors.Is(err, adapter.ErrNoNetwork), errors.Is(err, context.DeadlineExceeded):
		syncErr.Kind = ErrNoNetwork
	case errors.Is(err, adapter.ErrServerError):
		syncErr.Kind = ErrServerUnavailable
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		syncErr.Kind = ErrServerRejected
		var serverErr *adapter.ServerError
		if errors.As(err, &serverErr) {
			syncErr.Message = serverErr.Message
		}
	case errors.Is(err, adapter.ErrMalformedResponse):
		syncErr.Kind = ErrMalformedResponse
	default:
		syncErr.Kind = ErrLocalStoreUnavailable
	}
	return syncErr
}

// IsRetryable reports whether the next scheduled cycle may succeed without
// user action.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNoNetwork) ||
		errors.Is(err, ErrServerUnavailable) ||
		errors.Is(err, ErrSyncCancelled)
}
