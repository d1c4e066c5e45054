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

// Package core implements the shared state jointly referenced by the
// producer (promise) and consumer (future) sides of a future/promise pair.
//
// Core is the hardest and most interesting part of a future/promise
// library: a lock-light state machine whose correctness depends on
// carefully ordered atomic transitions, two-sided reference counting, and
// strict ownership rules about which side may call which method. The
// future/promise wrappers, combinators, timed waits, and concrete
// scheduler implementations that would normally sit on top of it are
// external collaborators and are intentionally not part of this package.
// It is specified only by the interfaces it demands of them (Executor,
// RequestContext) and exposes to them (New, NewWithResult, NewWithValue,
// and the methods below).
package core

import (
	"sync"

	"go.uber.org/atomic"
)

// Core is the shared state backing one future/promise pair. It is always
// heap-allocated (via one of the constructors below), must never be
// copied after construction, and must never be relocated: external
// references to it are raw pointers.
//
// result and callback are kept adjacent, so a rendezvous touches a
// single cache line for the pair.
type Core[T any] struct {
	result   *Try[T]
	callback func(Try[T])

	fsm fsm

	executor Executor
	priority int8

	active  atomic.Bool
	context RequestContext

	interruptMu         sync.Mutex
	interrupt           error
	interruptHandler    func(error)
	interruptHandlerSet atomic.Bool

	attached     atomic.Uint32
	callbackRefs atomic.Uint32
}

// New constructs an empty core (state Start) shared by a fresh
// future/promise pair; attached starts at 2, one for each side.
func New[T any]() *Core[T] {
	c := &Core[T]{context: noopContext{}}
	c.fsm.init(stateStart)
	c.active.Store(true)
	c.attached.Store(2)
	return c
}

// NewWithResult constructs a core already holding v (state OnlyResult).
// It is already detached on the promise side: attached starts at 1.
func NewWithResult[T any](v Try[T]) *Core[T] {
	c := &Core[T]{result: &v, context: noopContext{}}
	c.fsm.init(stateOnlyResult)
	c.active.Store(true)
	c.attached.Store(1)
	return c
}

// NewWithValue constructs a core already holding the successful value v,
// constructed in place. It is equivalent to NewWithResult(Ok(v)), offered
// separately to keep the three distinct construction paths explicit at
// the call site.
func NewWithValue[T any](v T) *Core[T] {
	return NewWithResult[T](Ok(v))
}

// coreRef is a paired release guard: releasing it once decrements both
// callbackRefs and attached. release is idempotent so a guard can be
// safely released from both a normal return path and a deferred cleanup
// without double-counting.
type coreRef[T any] struct {
	core *Core[T]
	once sync.Once
}

func newCoreRef[T any](c *Core[T]) *coreRef[T] {
	return &coreRef[T]{core: c}
}

func (r *coreRef[T]) release() {
	r.once.Do(func() {
		r.core.derefCallback()
		r.core.detachOne()
	})
}

// derefCallback decrements callbackRefs and clears the callback slot once
// it reaches zero, independently of when attached reaches zero.
func (c *Core[T]) derefCallback() {
	if c.callbackRefs.Dec() == 0 {
		c.callback = nil
	}
}

// detachOne decrements attached and destroys the core once it reaches
// zero.
func (c *Core[T]) detachOne() {
	if c.attached.Dec() == 0 {
		c.destroy()
	}
}

// destroy is the Go analogue of a destructor. Go's GC reclaims the
// memory regardless; what matters here is enforcing the attached == 0
// invariant, and dropping references eagerly so a use-after-detach bug
// surfaces as a nil dereference instead of silently running against
// stale state.
func (c *Core[T]) destroy() {
	if c.attached.Load() != 0 {
		panic(newProgrammerError("destructor invariant violated: attached != 0"))
	}
	c.result = nil
	c.callback = nil
	c.interruptHandler = nil
}
