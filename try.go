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

import "fmt"

// Try is a discriminated union of a value of T or a captured failure. It
// never represents "no value at all": T is never the unit/void type, so
// every Try is either a value or an error, never neither.
type Try[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failed wraps a non-nil failure. It panics if err is nil, since a failed
// Try with no error is a contradiction in terms.
func Failed[T any](err error) Try[T] {
	if err == nil {
		panic(newProgrammerError("Failed called with a nil error"))
	}
	return Try[T]{err: err}
}

// HasError reports whether this Try holds a failure rather than a value.
func (t Try[T]) HasError() bool {
	return t.err != nil
}

// Value returns the held value and error. If HasError is true, the
// returned value is T's zero value.
func (t Try[T]) Value() (T, error) {
	return t.value, t.err
}

// Error returns the held failure, or nil if this Try holds a value.
func (t Try[T]) Error() error {
	return t.err
}

func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("failed: %s", t.err)
	}
	return fmt.Sprintf("ok: %v", t.value)
}
