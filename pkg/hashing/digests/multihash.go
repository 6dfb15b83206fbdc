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

package digests

import (
	"fmt"

	"github.com/multiformats/go-multihash"
)

// Multihash renders the digest in multihash framing using the given
// multicodec code: a varint code, a varint length, then the digest bytes.
//
// The length prefix reflects the actual value length, so truncated digests
// encode without ambiguity. The code is supplied by the caller because a
// Digest carries only the algorithm name; descriptors in the algorithms
// package map names to codes.
func (d Digest) Multihash(code uint64) ([]byte, error) {
	encoded, err := multihash.Encode(d.value, code)
	if err != nil {
		return nil, fmt.Errorf("encoding %s digest as multihash: %w", d.algorithm, err)
	}
	return encoded, nil
}

// MultihashHex returns the multihash framing of the digest as a lowercase
// hex string. This is the form printed by the CLI's multihash output mode.
func (d Digest) MultihashHex(code uint64) (string, error) {
	encoded, err := d.Multihash(code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", encoded), nil
}
