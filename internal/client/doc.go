// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

// Package client implements the postboard command-line client.
//
// The primary abstraction is [ServerAPI], which decouples the command layer
// from the underlying transport. The package ships an HTTP/REST
// implementation ([NewHTTPServerAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
//
// The [App] type wires the transport together with the local session store
// and dispatches CLI commands (register, login, list, create, vote, ...).
package client
