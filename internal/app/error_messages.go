// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the sync
// server handlers and the client sync services.
//
// All Msg* constants are human-readable message strings that are written into
// the errorMessage field of HTTP error responses, shown to the user, or logged.
// Keeping them in one place keeps the wording identical on both sides of the
// protocol.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned by registration when the login is
	// taken.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgWrongTokenKind is returned when a refresh token is used as an access
	// token or the other way round.
	MsgWrongTokenKind = "wrong token kind"

	// MsgRatingOutOfRange is returned when a podcast rating is not in 1..5.
	MsgRatingOutOfRange = "rating must be between 1 and 5"

	// MsgUnknownUpNextAction is returned when an up-next change carries an
	// action code the server does not know.
	MsgUnknownUpNextAction = "unknown up next action"

	// MsgUnknownSetting is returned when a named-settings request carries a
	// field the server does not track or a value of the wrong type.
	MsgUnknownSetting = "unknown setting or wrong value type"

	// MsgMissingUUID is returned when a pushed row has no uuid.
	MsgMissingUUID = "uuid is required"

	// MsgSignInAgain is shown to the user when the session expired and the
	// refresh token was rejected.
	MsgSignInAgain = "your session has expired, please sign in again"

	// MsgSyncRejected is shown to the user when the server rejected a sync
	// request without explaining why.
	MsgSyncRejected = "the sync server rejected the request"
)
