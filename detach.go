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

import "github.com/xli/futurecore/internal/corelog"

// DetachFuture is the consumer side's half of destruction. It forces
// active back to true (flushing any dispatch a Deactivate call had
// deferred), then releases this side's attachment.
func (c *Core[T]) DetachFuture() {
	c.Activate()
	c.detachOne()
}

// DetachPromise is the producer side's half of destruction. If no result
// was ever installed, it synthesizes a broken-promise failure first
// (running through exactly the same FSM transition, and the same
// possible dispatch, as an explicit SetResult call would), then releases
// this side's attachment.
func (c *Core[T]) DetachPromise() {
	if !c.hasResult() {
		corelog.Error("core: promise detached without a result, installing broken-promise failure")
		c.SetResult(Failed[T](newBrokenPromiseError[T]()))
	}
	c.detachOne()
}
