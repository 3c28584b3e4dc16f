// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package throw

import (
	"fmt"
)

// detailedError pairs a message with an optional struct of named details,
// so a logger can emit both as structured fields instead of a format string.
type detailedError struct {
	msg string
	details interface{}
}

func (e *detailedError) Error() string {
	if e.details == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %+v", e.msg, e.details)
}

func (e *detailedError) AsDetail(target interface{}) bool {
	if e.details == nil {
		return false
	}
	return asDetail(e.details, target)
}

// New creates an error carrying an optional structured detail value.
// Callers pass at most one details argument; additional arguments are ignored.
func New(msg string, details ...interface{}) error {
	e := &detailedError{msg: msg}
	if len(details) > 0 {
		e.details = details[0]
	}
	return e
}

// IllegalState reports a violated internal invariant — the caller reached a
// state the state machine was not supposed to allow.
func IllegalState() error {
	return New("illegal state")
}

// IllegalValue reports a value that cannot legally occur at this point.
func IllegalValue() error {
	return New("illegal value")
}

// Impossible reports a branch that the code asserts can never be reached.
func Impossible() error {
	return New("impossible")
}

// NotImplemented reports an intentionally unimplemented path.
func NotImplemented() error {
	return New("not implemented")
}

// FailHere wraps an invariant check at the call site with a fixed message,
// for panics raised deep inside a helper where the caller's intent matters
// more than the helper's own description.
func FailHere(why string) error {
	return New(why)
}
