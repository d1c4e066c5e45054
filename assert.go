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

// assertSetExecutorPrecondition is the debug-build half of SetExecutor's
// precondition check; see assert_release.go for the release-build half.
// Calling SetExecutor outside its allowed states is undefined behavior
// that implementations should assert against, which is a weaker bar
// than the unconditional failure duplicate SetResult/SetCallback calls
// must raise. Unlike those two, this check is compiled out by default.
func assertSetExecutorPrecondition(s rendezvousState) {
	assertSetExecutorPreconditionImpl(s)
}
