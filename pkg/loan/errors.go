// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package loan

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can act on the outcome without parsing
// messages. Every precondition failure is a legitimate business outcome and is
// never retried here.
type Kind string

const (
	// KindNotFound covers absent records and, deliberately, records owned by
	// another tenant. The two are indistinguishable to the caller.
	KindNotFound Kind = "not_found"
	// KindForbidden means the caller is authenticated but not permitted.
	KindForbidden Kind = "forbidden"
	// KindConflict is a business-rule rejection such as an exhausted item.
	KindConflict Kind = "conflict"
	// KindValidation is malformed input.
	KindValidation Kind = "validation"
	// KindInternal is an invariant violation or a storage fault, a bug rather
	// than a recoverable user error. Details are logged, never rendered.
	KindInternal Kind = "internal"
)

type Error struct {
	Kind     Kind
	Resource string
	Reason   string

	err error
}

func (e *Error) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Resource, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.err
}

var (
	ErrNoCopiesAvailable = &Error{Kind: KindConflict, Resource: "item", Reason: "no copies available"}
	ErrLoanLimitReached  = &Error{Kind: KindConflict, Resource: "member", Reason: "active loan limit reached"}
	ErrAlreadyReturned   = &Error{Kind: KindConflict, Resource: "loan", Reason: "loan already returned"}
	ErrInventoryOverflow = &Error{Kind: KindInternal, Resource: "item", Reason: "available copies would exceed total copies"}
)

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Reason: "not found"}
}

func Forbidden(resource, reason string) *Error {
	return &Error{Kind: KindForbidden, Resource: resource, Reason: reason}
}

func Conflict(resource, reason string) *Error {
	return &Error{Kind: KindConflict, Resource: resource, Reason: reason}
}

func Validation(field, reason string) *Error {
	return &Error{Kind: KindValidation, Resource: field, Reason: reason}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Reason: "internal error", err: err}
}

// KindOf extracts the kind of any error produced by this package,
// KindInternal for everything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
