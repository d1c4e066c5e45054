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

// RequestContext is an ambient, thread-local-style value captured at
// callback-registration time and restored around the callback's
// execution: whatever ambient value the embedding application wants
// visible while a deferred callback runs.
type RequestContext interface {
	// Install makes this context the ambient one for as long as the
	// returned restore func hasn't been called, then hands back the
	// previous ambient value on restore.
	Install() (restore func())
}

// ContextProvider captures whatever is ambient right now into a
// RequestContext. SetCallback calls Save once, synchronously, inside the
// FSM's critical section, at the point the context capture must happen.
type ContextProvider interface {
	Save() RequestContext
}

type noopContext struct{}

func (noopContext) Install() func() { return func() {} }

type noopContextProvider struct{}

func (noopContextProvider) Save() RequestContext { return noopContext{} }

// ambientContext is the swappable package-level provider, following the
// same idiom as the default Executor var in executor.go.
var ambientContext ContextProvider = noopContextProvider{}

// SetContextProvider overrides the ambient-context capture strategy used
// by every subsequently-registered callback. It panics if p is nil.
func SetContextProvider(p ContextProvider) {
	if p == nil {
		panic(newProgrammerError("SetContextProvider called with a nil provider"))
	}
	ambientContext = p
}
