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

import (
	"fmt"
	"io"

	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
	"github.com/sampras343/hashctx/pkg/hashing/digests"
)

// Sum computes the digest of data in one call.
//
// It runs a full create, update, finalize cycle on a fresh context.
func Sum(desc algorithms.Descriptor, data []byte) (digests.Digest, error) {
	c, err := New(desc)
	if err != nil {
		return digests.Digest{}, err
	}

	if err := c.Update(data); err != nil {
		return digests.Digest{}, err
	}
	return c.Finalize()
}

// SumKeyed computes HMAC-<algorithm> of data under secret in one call.
//
// The secret ownership contract is NewKeyed's: the slice is zeroized
// before return on every path.
func SumKeyed(desc algorithms.Descriptor, secret, data []byte) (digests.Digest, error) {
	c, err := NewKeyed(desc, secret)
	if err != nil {
		return digests.Digest{}, err
	}

	if err := c.Update(data); err != nil {
		return digests.Digest{}, err
	}
	return c.Finalize()
}

// SumReader streams r through a fresh context and returns its digest.
//
// chunkSize sets the copy buffer length; zero or negative selects
// io.Copy's default.
func SumReader(desc algorithms.Descriptor, r io.Reader, chunkSize int) (digests.Digest, error) {
	c, err := New(desc)
	if err != nil {
		return digests.Digest{}, err
	}
	return drain(c, r, chunkSize)
}

// SumKeyedReader streams r through a fresh keyed context and returns its
// MAC. The secret ownership contract is NewKeyed's.
func SumKeyedReader(desc algorithms.Descriptor, secret []byte, r io.Reader, chunkSize int) (digests.Digest, error) {
	c, err := NewKeyed(desc, secret)
	if err != nil {
		return digests.Digest{}, err
	}
	return drain(c, r, chunkSize)
}

func drain(c *Context, r io.Reader, chunkSize int) (digests.Digest, error) {
	if chunkSize > 0 {
		buf := make([]byte, chunkSize)
		if _, err := io.CopyBuffer(c, r, buf); err != nil {
			return digests.Digest{}, fmt.Errorf("streaming into %s context: %w", c.DigestName(), err)
		}
	} else {
		if _, err := io.Copy(c, r); err != nil {
			return digests.Digest{}, fmt.Errorf("streaming into %s context: %w", c.DigestName(), err)
		}
	}
	return c.Finalize()
}
