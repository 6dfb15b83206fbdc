// Copyright 2025 The hashctx Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engines

// State is the lifecycle state of a digest context.
//
// Transitions are monotonic: ACTIVE may move to FINALIZED or DESTROYED,
// FINALIZED may move to DESTROYED, and DESTROYED is terminal. There is no
// path back to ACTIVE; a context is single-use.
type State int

const (
	// StateActive means the context accepts updates and can be finalized.
	// A freshly created context and one that has absorbed data are both
	// ACTIVE; the two are not observably different.
	StateActive State = iota

	// StateFinalized means the digest has been emitted. The accumulator
	// is gone; only destruction remains.
	StateFinalized

	// StateDestroyed means the context has been released. Every
	// operation fails from here.
	StateDestroyed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateFinalized:
		return "finalized"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
