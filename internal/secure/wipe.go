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

// Package secure provides best-effort erasure of sensitive byte slices.
//
// Go gives no hard guarantee that memory is never copied by the runtime
// (stack growth, GC moves), so erasure here is best effort: it removes the
// plaintext from the one buffer the caller controls, which is the copy an
// attacker inspecting a heap dump or swapped page would otherwise find.
package secure

import "runtime"

// Zeroize overwrites every byte of b with zero.
//
// The runtime.KeepAlive call keeps the slice live past the final store so
// the compiler cannot treat the wipe as a dead store and elide it. Callers
// holding key material should defer Zeroize at acquisition time so the wipe
// runs on every exit path.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// IsZeroed reports whether every byte of b is zero. It exists so callers
// (and tests) can assert that a secret buffer was wiped.
func IsZeroed(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
