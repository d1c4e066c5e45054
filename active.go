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

// Activate marks the core active and, if it is currently Armed, drives it
// the rest of the way to Done, firing the callback. Safe to call from
// any thread, including a second time on an already-active core (the
// dispatch attempt is then simply a no-op).
func (c *Core[T]) Activate() {
	c.active.Store(true)
	c.maybeCallback()
}

// Deactivate marks the core inactive. If it is, or later becomes, Armed
// while inactive, the callback is not fired until a later Activate call.
// Safe to call from any thread.
func (c *Core[T]) Deactivate() {
	c.active.Store(false)
}

// IsActive reports the current value of the active flag. Callable from
// either side.
func (c *Core[T]) IsActive() bool {
	return c.active.Load()
}
