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
	"runtime"

	"go.uber.org/atomic"
)

// rendezvousState is one of the five states of the Core's FSM.
//
//	          OnlyCallback
//	         /            \
//	  Start                Armed - Done
//	         \            /
//	           OnlyResult
//
// The callback is only invoked on the Armed -> Done transition, and that
// transition happens immediately after Only* -> Armed if the core is active.
type rendezvousState uint32

const (
	stateStart rendezvousState = iota
	stateOnlyResult
	stateOnlyCallback
	stateArmed
	stateDone

	// lockAcquired is a sentinel outside the valid state range, swapped in
	// while a transition's critical section runs. It doubles as the fsm's
	// one-word spin lock: readers and writers that observe it just retry.
	lockAcquired rendezvousState = 0xff
)

func (s rendezvousState) String() string {
	switch s {
	case stateStart:
		return "Start"
	case stateOnlyResult:
		return "OnlyResult"
	case stateOnlyCallback:
		return "OnlyCallback"
	case stateArmed:
		return "Armed"
	case stateDone:
		return "Done"
	default:
		return "<locked>"
	}
}

// fsm is the single-word, lock-light state holder described in the core's
// design: a plain atomic swap against the lockAcquired sentinel stands in
// for a one-byte spin lock, with a read-acquire/release-store pair
// publishing the next state once the critical section completes.
type fsm struct {
	v atomic.Uint32
}

// acquire reads the current state and leaves the lock held (lockAcquired
// swapped in). Callers must pair this with release.
func (f *fsm) acquire() rendezvousState {
	cs := rendezvousState(f.v.Swap(uint32(lockAcquired)))
	for cs == lockAcquired {
		runtime.Gosched()
		cs = rendezvousState(f.v.Swap(uint32(lockAcquired)))
	}
	return cs
}

// release publishes next and drops the lock. It must only be called by the
// goroutine that holds the lock via acquire.
func (f *fsm) release(next rendezvousState) {
	if !f.v.CAS(uint32(lockAcquired), uint32(next)) {
		panic(newProgrammerError("fsm released from an unexpected state"))
	}
}

// load reads the current state without taking the lock for writing; it
// still spins past a transiently-held lock so callers never observe the
// sentinel value.
func (f *fsm) load() rendezvousState {
	cs := rendezvousState(f.v.Load())
	for cs == lockAcquired {
		runtime.Gosched()
		cs = rendezvousState(f.v.Load())
	}
	return cs
}

// init sets the initial state without locking. Only safe before the core
// has been published to another goroutine (i.e. during construction).
func (f *fsm) init(s rendezvousState) {
	f.v.Store(uint32(s))
}
