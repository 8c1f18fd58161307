// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"

	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/logging"
)

// FailureKind is the fixed taxonomy every failed call is normalized into.
// Screens branch on kinds, never on raw status codes.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureValidation
	FailureAuthExpired
	FailureForbidden
	FailureNotFound
	FailureServer
	FailureUnreachable
)

// String returns a stable identifier for logging.
func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureAuthExpired:
		return "auth_expired"
	case FailureForbidden:
		return "forbidden"
	case FailureNotFound:
		return "not_found"
	case FailureServer:
		return "server"
	case FailureUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Error is the single error type the pipeline hands to UI code. Message is
// already localized and user-displayable.
type Error struct {
	Kind    FailureKind
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the failure kind from err, or FailureUnknown for errors
// that did not come from the pipeline.
func KindOf(err error) FailureKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return FailureUnknown
}

// errorBody is the JSON error envelope the API uses.
type errorBody struct {
	Detail string `json:"detail"`
}

// classifyStatus maps an HTTP error status plus response body to an Error.
// 400 surfaces the server-supplied message verbatim when one is present; the
// default branch does the same before falling back to a generic message.
func classifyStatus(status int, body []byte) *Error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	switch status {
	case 400:
		msg := eb.Detail
		if msg == "" {
			msg = i18n.T("err.bad_request")
		}
		return &Error{Kind: FailureValidation, Message: msg, Status: status}
	case 401:
		return &Error{Kind: FailureAuthExpired, Message: i18n.T("err.auth_expired"), Status: status}
	case 403:
		return &Error{Kind: FailureForbidden, Message: i18n.T("err.forbidden"), Status: status}
	case 404:
		return &Error{Kind: FailureNotFound, Message: i18n.T("err.not_found"), Status: status}
	case 500:
		return &Error{Kind: FailureServer, Message: i18n.T("err.server"), Status: status}
	default:
		msg := eb.Detail
		if msg == "" {
			msg = i18n.T("err.unexpected")
		}
		return &Error{Kind: FailureUnknown, Message: msg, Status: status}
	}
}

// classifyTransport maps a failure to obtain any response (DNS error, refused
// connection, exceeded deadline) to an Unreachable error.
func classifyTransport(err error) *Error {
	logging.Debugf("transport failure: %v", err)
	return &Error{Kind: FailureUnreachable, Message: i18n.T("err.unreachable")}
}
