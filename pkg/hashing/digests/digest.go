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

// Package digests provides the value type produced by finalizing a digest
// context.
//
// A Digest pairs the algorithm name with the computed bytes. It is
// effectively immutable: fields are unexported and both constructors and
// accessors copy the underlying data, so a finalized result cannot be
// changed by later writes to the caller's buffers.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a computed digest value.
//
// The value may be shorter than the algorithm's natural output when the
// producing context was finalized with truncation. The algorithm name is
// not adjusted for truncation; Size reports the actual byte count.
type Digest struct {
	algorithm string // canonical algorithm name, e.g. "sha256"
	value     []byte // computed bytes, possibly truncated
}

// NewDigest creates a Digest for the given algorithm and value.
//
// The value slice is defensively copied so callers remain free to reuse or
// wipe their buffer afterwards.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the canonical name of the algorithm that produced this
// digest, e.g. "sha256" or "blake2b-512".
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the digest bytes.
//
// A defensive copy is returned so callers cannot mutate the stored value.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest bytes.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value. For a truncated
// digest this is the truncated length, not the algorithm's natural size.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns the digest in "algorithm:hexvalue" form,
// e.g. "sha256:e3b0c4...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm and value.
//
// The value comparison runs in constant time so that Equal is safe to use
// on MAC outputs.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}

	if len(d.value) != len(other.value) {
		return false
	}

	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}
