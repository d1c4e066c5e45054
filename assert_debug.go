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

//go:build corestate_debug

package core

func assertSetExecutorPreconditionImpl(s rendezvousState) {
	switch s {
	case stateStart, stateOnlyResult, stateDone:
		return
	default:
		panic(newProgrammerError("SetExecutor called while a callback may be running or about to run, state=" + s.String()))
	}
}
