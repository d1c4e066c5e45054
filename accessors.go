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

// Ready reports whether a result has been installed (state OnlyResult,
// Armed, or Done). Callable from either side.
func (c *Core[T]) Ready() bool {
	return c.hasResult()
}

// hasResult is Ready's unexported core, reused by Raise,
// SetInterruptHandler, and DetachPromise, all of which need to know
// whether a result is already on file without caring which of the three
// result-bearing states the core is in.
func (c *Core[T]) hasResult() bool {
	switch c.fsm.load() {
	case stateOnlyResult, stateArmed, stateDone:
		return true
	default:
		return false
	}
}

// GetTry returns the installed result. It fails with ErrNotReady if
// called before Ready reports true; that failure is recoverable at the
// caller; it is not a programmer error, unlike a duplicate SetResult
// call.
func (c *Core[T]) GetTry() (Try[T], error) {
	if !c.hasResult() {
		return Try[T]{}, ErrNotReady
	}
	return *c.result, nil
}

// State reports the FSM's current state, for diagnostics and tests.
func (c *Core[T]) State() string {
	return c.fsm.load().String()
}
