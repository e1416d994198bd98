// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apierrors is the error taxonomy shared by the session, request and
// workspace layers. Callers branch on Kind, users read UserMessage.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCredentials
	KindAccountNotFound
	KindServiceUnavailable
	KindNetworkUnreachable
	KindAuthExpiredUnrecoverable
	KindPermissionDenied
	KindValidation
	KindMissingField
	KindNotFound
	KindConflict
	KindRejected
	KindLoginRequired
)

var kindNames = map[Kind]string{
	KindUnknown:                  "unknown",
	KindInvalidCredentials:       "invalid_credentials",
	KindAccountNotFound:          "account_not_found",
	KindServiceUnavailable:       "service_unavailable",
	KindNetworkUnreachable:       "network_unreachable",
	KindAuthExpiredUnrecoverable: "auth_expired_unrecoverable",
	KindPermissionDenied:         "permission_denied",
	KindValidation:               "validation",
	KindMissingField:             "missing_field",
	KindNotFound:                 "not_found",
	KindConflict:                 "conflict",
	KindRejected:                 "rejected",
	KindLoginRequired:            "login_required",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Transient kinds may succeed if the same operation is attempted later.
func (k Kind) Transient() bool {
	return k == KindServiceUnavailable || k == KindNetworkUnreachable
}

// Sentinels for errors.Is, matching on kind only.
var (
	ErrInvalidCredentials       = &Error{Kind: KindInvalidCredentials}
	ErrAccountNotFound          = &Error{Kind: KindAccountNotFound}
	ErrServiceUnavailable       = &Error{Kind: KindServiceUnavailable}
	ErrNetworkUnreachable       = &Error{Kind: KindNetworkUnreachable}
	ErrAuthExpiredUnrecoverable = &Error{Kind: KindAuthExpiredUnrecoverable}
	ErrPermissionDenied         = &Error{Kind: KindPermissionDenied}
	ErrValidation               = &Error{Kind: KindValidation}
	ErrMissingField             = &Error{Kind: KindMissingField}
	ErrNotFound                 = &Error{Kind: KindNotFound}
	ErrConflict                 = &Error{Kind: KindConflict}
	ErrRejected                 = &Error{Kind: KindRejected}
	ErrLoginRequired            = &Error{Kind: KindLoginRequired}
)

type Error struct {
	Kind Kind
	// Status is the HTTP status that produced the error, 0 when there was no response.
	Status  int
	Message string
	// Field names the offending input for MissingField and Validation.
	Field string
	// Required is the minimum role name for PermissionDenied.
	Required string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.String())
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s)", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: field + " is required"}
}

func Invalid(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func PermissionDenied(required, message string) *Error {
	return &Error{Kind: KindPermissionDenied, Required: required, Message: message}
}

// FromStatus maps a backend status code to an error. anonymous marks
// requests sent without a credential, where 401 means the submitted
// credentials were wrong rather than the session being expired.
func FromStatus(status int, anonymous bool, message, field string) *Error {
	e := &Error{Status: status, Message: message, Field: field}

	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
	case status == http.StatusUnauthorized && anonymous:
		e.Kind = KindInvalidCredentials
	case status == http.StatusUnauthorized:
		e.Kind = KindAuthExpiredUnrecoverable
	case status == http.StatusForbidden:
		e.Kind = KindPermissionDenied
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusConflict:
		e.Kind = KindConflict
	case status >= http.StatusInternalServerError:
		e.Kind = KindServiceUnavailable
	default:
		e.Kind = KindUnknown
	}

	return e
}

// KindOf returns the kind of the first *Error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns text a user can act on.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if !errors.As(err, &e) {
		return "Something went wrong. Please try again."
	}

	switch e.Kind {
	case KindInvalidCredentials:
		return "The email or password is incorrect."
	case KindAccountNotFound:
		return "No account exists for this email. Sign up first."
	case KindServiceUnavailable:
		return "The service is temporarily unavailable. Please try again shortly."
	case KindNetworkUnreachable:
		return "Cannot reach the service. Check your network connection."
	case KindAuthExpiredUnrecoverable:
		return "Your session has expired. Please log in again."
	case KindLoginRequired:
		return "Please log in to continue."
	case KindPermissionDenied:
		if e.Required != "" {
			return fmt.Sprintf("This action requires the %s role.", e.Required)
		}
	case KindMissingField:
		if e.Field != "" {
			return fmt.Sprintf("Please provide %s.", e.Field)
		}
	}

	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}
