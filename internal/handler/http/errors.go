// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoLoginInContext means an authenticated route ran without the auth
	// middleware.
	ErrNoLoginInContext = errors.New("no login in request context")

	// ErrIntegrityCheckFailed means the HashSHA256 header of a request does
	// not match its body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
