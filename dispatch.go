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

// SetResult moves v into the result slot. Producer-side only.
//
// It panics if a result has already been installed (duplicate setResult
// is a programmer error, never a recoverable one, per the package's
// error taxonomy).
func (c *Core[T]) SetResult(v Try[T]) {
	cur := c.fsm.acquire()
	switch cur {
	case stateStart:
		c.result = &v
		c.fsm.release(stateOnlyResult)
	case stateOnlyCallback:
		c.result = &v
		c.fsm.release(stateArmed)
		c.maybeCallback()
	default:
		c.fsm.release(cur)
		panic(newProgrammerError("duplicate SetResult call"))
	}
}

// SetCallback installs cb as the core's one-shot continuation. Consumer-
// side only. It captures whatever RequestContext the current
// ContextProvider reports as ambient right now, inside the same critical
// section that installs the callback.
//
// It panics if cb is nil, or if a callback has already been installed.
func (c *Core[T]) SetCallback(cb func(Try[T])) {
	if cb == nil {
		panic(newProgrammerError("SetCallback called with a nil callback"))
	}

	cur := c.fsm.acquire()
	switch cur {
	case stateStart:
		c.callback = cb
		c.context = ambientContext.Save()
		c.fsm.release(stateOnlyCallback)
	case stateOnlyResult:
		c.callback = cb
		c.context = ambientContext.Save()
		c.fsm.release(stateArmed)
		c.maybeCallback()
	default:
		c.fsm.release(cur)
		panic(newProgrammerError("duplicate SetCallback call"))
	}
}

// SetExecutor assigns the executor (and an optional priority hint) used to
// run the callback once armed. It is only safe to call from Start,
// OnlyResult, or Done, states in which the callback is guaranteed not to
// be running or about to run concurrently. Calling it from OnlyCallback or
// Armed is undefined behavior; debug builds (built with the
// corestate_debug tag) assert against it, release builds trust the
// caller. This is a weaker bar than the unconditional failure required
// of duplicate SetResult/SetCallback calls.
func (c *Core[T]) SetExecutor(x Executor, priority int8) {
	assertSetExecutorPrecondition(c.fsm.load())
	c.executor = x
	c.priority = priority
}

// GetExecutor returns the currently assigned executor, or nil if none was
// ever set.
func (c *Core[T]) GetExecutor() Executor {
	return c.executor
}

// maybeCallback re-enters the FSM and performs the Armed -> Done
// transition (firing the callback) iff the core is currently Armed and
// active. It is the single re-entry point for "something might have made
// the core dispatchable": called after SetResult/SetCallback complete the
// rendezvous, and again whenever Activate flips active from false to
// true.
func (c *Core[T]) maybeCallback() {
	cur := c.fsm.acquire()
	if cur == stateArmed && c.active.Load() {
		c.fsm.release(stateDone)
		c.doCallback()
		return
	}
	c.fsm.release(cur)
}

// doCallback actually runs the callback, either synchronously or via the
// assigned executor. It must only be called on the Armed -> Done
// transition, with the FSM lock already released to stateDone.
func (c *Core[T]) doCallback() {
	x := c.executor

	if x == nil {
		// No executor: run synchronously, on the calling thread. Only one
		// extra attached reference is taken here (not the two the
		// executor path takes), since there is no second, asynchronous
		// owner of the callback closure to protect against.
		c.attached.Inc()
		defer func() {
			c.callback = nil
			c.detachOne()
		}()

		cb := c.callback
		res := *c.result
		restore := c.context.Install()
		cb(res)
		restore()
		return
	}

	// Executor path: take two references up front, one for this call's
	// own scope and one transferred into the submitted closure, so the
	// core survives until both the submission attempt and the eventual
	// (or discarded) execution have run, and the callback slot is only
	// cleared once both have released their callbackRefs share.
	c.attached.Add(2)
	c.callbackRefs.Add(2)
	localGuard := newCoreRef(c)
	lambdaGuard := newCoreRef(c)

	submit := func() {
		defer lambdaGuard.release()
		restore := c.context.Install()
		defer restore()
		cb := c.callback
		res := *c.result
		cb(res)
	}

	var submitErr error
	if pe, ok := x.(PriorityExecutor); ok && pe.NumPriorities() > 1 {
		submitErr = pe.AddWithPriority(submit, resolvePriority(pe, c.priority))
	} else {
		submitErr = x.Add(submit)
	}
	localGuard.release()

	if submitErr != nil {
		// The executor discarded the closure outright (it never accepted
		// it), so nothing will ever call submit; read the callback out
		// before releasing its guard below, since that release may drop
		// callbackRefs to zero and clear the slot.
		corelog.Warn("core: executor rejected callback submission", "error", submitErr)

		c.interruptMu.Lock()
		interrupt := c.interrupt
		c.interruptMu.Unlock()

		failure := Failed[T](newExecutorRejectionError(submitErr, interrupt))
		c.result = &failure

		cb := c.callback
		restore := c.context.Install()
		cb(failure)
		restore()

		lambdaGuard.release()
	}
}
