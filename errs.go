// Copyright 2025 The Futurecore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"fmt"
	"reflect"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/multierr"
)

// kind distinguishes the four kinds of error this package produces: a
// programmer error is never returned as a value, the other three are.
type kind uint8

const (
	kindProgrammer kind = iota
	kindBrokenPromise
	kindExecutorRejection
	kindNotReady
)

// Error is the concrete error type produced by this package. It never
// participates in control flow on its own; callers that care about which
// of the four kinds they got should use errors.As and call Kind.
type Error struct {
	kind kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// Kind reports which of the taxonomy's four buckets this error belongs to.
func (e *Error) Kind() kind { return e.kind }

// IsBrokenPromise reports whether err is (or wraps) a broken-promise error.
func IsBrokenPromise(err error) bool { return hasKind(err, kindBrokenPromise) }

// IsExecutorRejection reports whether err is (or wraps) an executor
// rejection error.
func IsExecutorRejection(err error) bool { return hasKind(err, kindExecutorRejection) }

// IsNotReady reports whether err is (or wraps) a not-ready error.
func IsNotReady(err error) bool { return hasKind(err, kindNotReady) }

func hasKind(err error, k kind) bool {
	var ce *Error
	return pkgerrors.As(err, &ce) && ce.kind == k
}

// newProgrammerError builds the loud, never-recoverable failure raised for
// the programmer-error kind (duplicate setResult/setCallback, setExecutor
// outside its allowed states, a destructor reached with attached != 0).
// It is always wrapped with github.com/pkg/errors so the panic carries a
// capture-site stack trace.
func newProgrammerError(msg string) error {
	return &Error{kind: kindProgrammer, err: pkgerrors.New("core: " + msg)}
}

// ErrNotReady is returned by GetTry before the core has a result.
var ErrNotReady = &Error{kind: kindNotReady, err: pkgerrors.New("core: future is not ready")}

// newBrokenPromiseError builds the failure installed by detachPromise when
// the producer side is dropped without ever supplying a result.
func newBrokenPromiseError[T any]() error {
	var zero T
	desc := reflect.TypeOf(zero)
	name := "<unknown>"
	if desc != nil {
		name = desc.String()
	}
	return &Error{
		kind: kindBrokenPromise,
		err:  pkgerrors.New(fmt.Sprintf("core: broken promise: Promise[%s] was destroyed without a result", name)),
	}
}

// newExecutorRejectionError wraps an error surfaced by Executor.Add or
// Executor.AddWithPriority. If an interrupt was already on file for this
// core, it is folded into the same failure with go.uber.org/multierr, so a
// caller inspecting the delivered Try sees both the rejection and the
// reason the consumer had already lost interest.
func newExecutorRejectionError(submitErr error, interrupt error) error {
	err := multierr.Append(
		pkgerrors.WithMessage(submitErr, "core: executor rejected the callback"),
		interrupt,
	)
	return &Error{kind: kindExecutorRejection, err: err}
}
