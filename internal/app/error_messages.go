// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

// Package app contains shared application-layer constants used across the
// postboard server handlers and middleware.
//
// All Msg* constants are human-readable detail strings that are written into
// HTTP error response bodies to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the API: several of
// them are emitted from more than one handler, and clients match on the exact
// text.
package app

const (
	// MsgInvalidRequestBody is returned when a JSON request body cannot be
	// decoded into the expected shape.
	MsgInvalidRequestBody = "invalid request body"

	// MsgInvalidFormData is returned when a login request body cannot be
	// parsed as a URL-encoded form.
	MsgInvalidFormData = "invalid form data"

	// MsgUsernameAndPasswordRequired is returned when a login form omits the
	// username or the password field entirely. A field that is present but
	// empty goes through the credential check instead.
	MsgUsernameAndPasswordRequired = "username and password are required"

	// MsgInvalidGzipData is returned when a request body declared as gzip
	// via Content-Encoding cannot be decompressed.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgInvalidEmailOrPassword is returned when registration input fails
	// validation (malformed email or empty password).
	MsgInvalidEmailOrPassword = "invalid email or password"

	// MsgEmailAlreadyRegistered is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any existing user record. The wording is
	// identical for an unknown email and a wrong password.
	MsgInvalidCredentials = "invalid credentials"

	// MsgCouldNotValidateCredentials is the uniform 401 body for every
	// bearer-token rejection: missing header, malformed header, empty,
	// expired or tampered token. One wording for all cases, so a caller
	// cannot probe which check failed.
	MsgCouldNotValidateCredentials = "could not validate credentials"

	// MsgInvalidPostID is returned when the post id path parameter is not a
	// positive integer.
	MsgInvalidPostID = "invalid post id"

	// MsgInvalidUserID is returned when the user id path parameter is not a
	// positive integer.
	MsgInvalidUserID = "invalid user id"

	// MsgInvalidPaginationParameters is returned when the limit or offset
	// query parameter cannot be parsed as a non-negative integer.
	MsgInvalidPaginationParameters = "invalid pagination parameters"

	// MsgTitleAndContentRequired is returned when a post create or replace
	// body omits the title or the content.
	MsgTitleAndContentRequired = "title and content are required"

	// MsgNotAuthorizedForAction is returned when the authenticated user
	// attempts to modify a post owned by a different user.
	MsgNotAuthorizedForAction = "not authorized to perform requested action"

	// MsgVoteDoesNotExist is returned when a vote retraction targets a
	// (user, post) pair with no recorded vote.
	MsgVoteDoesNotExist = "vote does not exist"
)

// Format templates for detail strings that embed identifiers. Used with
// fmt.Sprintf.
const (
	// MsgPostNotFoundFmt formats the 404 body for a missing post.
	MsgPostNotFoundFmt = "post with id: %d not found"

	// MsgUserNotFoundFmt formats the 404 body for a missing user.
	MsgUserNotFoundFmt = "user with id: %d not found"

	// MsgVoteAlreadyCastFmt formats the 409 body for a duplicate vote;
	// arguments are the user id followed by the post id.
	MsgVoteAlreadyCastFmt = "user %d has already voted on post %d"
)
