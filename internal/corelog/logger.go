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

// Package corelog is the core's internal logging sink: a swappable
// package-level *zap.SugaredLogger, defaulting to a no-op.
//
// Warn and Error always run; Debug is compiled to a no-op unless this
// module is built with the corestate_debug tag, so the rendezvous hot
// path pays nothing for logging by default.
package corelog

import "go.uber.org/zap"

var log = zap.NewNop().Sugar()

// SetLogger overrides the sink used by Warn/Error/Debug. Passing nil
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		log = zap.NewNop().Sugar()
		return
	}
	log = l.Sugar()
}

// Warn logs a warning-level event, e.g. an executor rejecting a
// submitted callback.
func Warn(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

// Error logs an error-level event, e.g. a synthesized broken-promise
// failure.
func Error(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}
