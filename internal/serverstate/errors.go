// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serverstate

import "errors"

var (
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrInvalidData          = errors.New("invalid data")
)
