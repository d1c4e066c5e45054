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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One subtest per row of the FSM transition table that SetCallback and
// SetResult implement in dispatch.go: setCallback/setResult from each
// state, including the three "fail: duplicate" rows.
func TestFSM_TransitionTable(t *testing.T) {
	t.Run("setCallback Start->OnlyCallback", func(t *testing.T) {
		c := New[int]()
		c.SetCallback(func(Try[int]) {})
		assert.Equal(t, "OnlyCallback", c.State())
		c.SetResult(Ok(0))
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setCallback OnlyResult->Armed", func(t *testing.T) {
		c := NewWithResult[int](Ok(1))
		c.SetCallback(func(Try[int]) {})
		assert.Equal(t, "Done", c.State())
		c.DetachFuture()
	})

	t.Run("setCallback OnlyCallback->fails", func(t *testing.T) {
		c := New[int]()
		c.SetCallback(func(Try[int]) {})
		assert.Panics(t, func() { c.SetCallback(func(Try[int]) {}) })
		assert.Equal(t, "OnlyCallback", c.State())
		c.SetResult(Ok(0))
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setCallback Armed->fails", func(t *testing.T) {
		c := New[int]()
		c.Deactivate()
		c.SetCallback(func(Try[int]) {})
		c.SetResult(Ok(0))
		require.Equal(t, "Armed", c.State())
		assert.Panics(t, func() { c.SetCallback(func(Try[int]) {}) })
		c.Activate()
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setCallback Done->fails", func(t *testing.T) {
		c := NewWithResult[int](Ok(1))
		c.SetCallback(func(Try[int]) {})
		require.Equal(t, "Done", c.State())
		assert.Panics(t, func() { c.SetCallback(func(Try[int]) {}) })
		c.DetachFuture()
	})

	t.Run("setResult Start->OnlyResult", func(t *testing.T) {
		c := New[int]()
		c.SetResult(Ok(1))
		assert.Equal(t, "OnlyResult", c.State())
		c.SetCallback(func(Try[int]) {})
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setResult OnlyCallback->Armed", func(t *testing.T) {
		c := New[int]()
		c.SetCallback(func(Try[int]) {})
		c.SetResult(Ok(1))
		assert.Equal(t, "Done", c.State())
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setResult OnlyResult->fails", func(t *testing.T) {
		c := New[int]()
		c.SetResult(Ok(1))
		assert.Panics(t, func() { c.SetResult(Ok(2)) })
		c.SetCallback(func(Try[int]) {})
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setResult Armed->fails", func(t *testing.T) {
		c := New[int]()
		c.Deactivate()
		c.SetCallback(func(Try[int]) {})
		c.SetResult(Ok(0))
		require.Equal(t, "Armed", c.State())
		assert.Panics(t, func() { c.SetResult(Ok(1)) })
		c.Activate()
		c.DetachFuture()
		c.DetachPromise()
	})

	t.Run("setResult Done->fails", func(t *testing.T) {
		c := NewWithResult[int](Ok(1))
		c.SetCallback(func(Try[int]) {})
		require.Equal(t, "Done", c.State())
		assert.Panics(t, func() { c.SetResult(Ok(2)) })
		c.DetachFuture()
	})
}

// Refcount property: dispatch through an executor, and the callback slot
// must clear once callbackRefs reaches zero, independent of attached.
func TestRefcount_CallbackSlotClearedIndependentlyOfAttached(t *testing.T) {
	done := make(chan struct{})
	exec := ExecutorFunc(func(fn func()) error {
		fn()
		close(done)
		return nil
	})

	c := New[int]()
	c.SetExecutor(exec, PriorityUnspecified)
	c.SetCallback(func(Try[int]) {})
	c.SetResult(Ok(1))
	<-done

	assert.Nil(t, c.callback)
	assert.Equal(t, uint32(0), c.callbackRefs.Load())
	// attached is still held by both sides (promise/future not yet
	// detached): the two refs doCallback took have already been
	// released, leaving the original 2 untouched.
	assert.Equal(t, uint32(2), c.attached.Load())

	c.DetachFuture()
	c.DetachPromise()
	assert.Equal(t, uint32(0), c.attached.Load())
}
