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

// Raise is the consumer-side best-effort notification that it is no
// longer interested in the result. It never completes the core by
// itself. If a result has already been installed, or an interrupt has
// already been stored, the call is a silent no-op; otherwise the
// interrupt is stored and, if a handler is already registered, invoked
// synchronously with it.
//
// Raise panics if err is nil.
func (c *Core[T]) Raise(err error) {
	if err == nil {
		panic(newProgrammerError("Raise called with a nil error"))
	}

	c.interruptMu.Lock()
	defer c.interruptMu.Unlock()

	if c.interrupt != nil || c.hasResult() {
		return
	}
	c.interrupt = err
	if c.interruptHandler != nil {
		c.interruptHandler(err)
	}
}

// SetInterruptHandler is the producer-side registration of a handler to
// be run if the consumer ever raises an interrupt. If an interrupt has
// already been raised, fn runs synchronously with it right away. If a
// result has already been installed, the call is a no-op: there is
// nothing left to interrupt.
//
// SetInterruptHandler panics if fn is nil.
func (c *Core[T]) SetInterruptHandler(fn func(error)) {
	if fn == nil {
		panic(newProgrammerError("SetInterruptHandler called with a nil handler"))
	}

	c.interruptMu.Lock()
	defer c.interruptMu.Unlock()

	if c.hasResult() {
		return
	}
	if c.interrupt != nil {
		fn(c.interrupt)
		return
	}
	c.interruptHandler = fn
	c.interruptHandlerSet.Store(true)
}

// GetInterruptHandler returns the currently registered interrupt handler,
// or nil if none has ever been set. Callable from either side. The
// interruptHandlerSet flag gates the fast path: a core that has never had
// a handler registered returns nil without taking the interrupt lock.
func (c *Core[T]) GetInterruptHandler() func(error) {
	if !c.interruptHandlerSet.Load() {
		return nil
	}
	c.interruptMu.Lock()
	defer c.interruptMu.Unlock()
	return c.interruptHandler
}
