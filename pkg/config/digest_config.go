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

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sampras343/hashctx/internal/secure"
	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
	"github.com/sampras343/hashctx/pkg/hashing/digests"
	"github.com/sampras343/hashctx/pkg/hashing/handles"
)

// DigestConfig holds configuration for computing digests.
//
// It determines which algorithm to use, how much of the digest to emit,
// and how input is streamed.
type DigestConfig struct {
	// Hash algorithm (e.g., "sha256", "blake2b-512")
	algorithm string

	// Number of leading digest bytes to emit (only when truncate is set)
	truncateTo uint
	truncate   bool

	// Chunk size for streaming reads (0 = unbuffered io.Copy)
	chunkSize int

	// Whether digests are rendered in multihash framing instead of bare hex
	multihash bool
}

// NewDigestConfig creates a new digest configuration with defaults.
//
// Defaults: sha256, full-length digests, 8KB chunk size, bare hex output.
//
// Returns a DigestConfig ready for customization via method chaining.
func NewDigestConfig() *DigestConfig {
	return &DigestConfig{
		algorithm: algorithms.SHA256,
		truncate:  false,
		chunkSize: 8192, // 8KB default chunk size
		multihash: false,
	}
}

// SetAlgorithm sets the hash algorithm by registry name.
//
// The name is not checked here; Validate or the first digest operation
// reports unknown algorithms.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) SetAlgorithm(name string) *DigestConfig {
	c.algorithm = name
	return c
}

// SetTruncation requests truncated digests of at most n leading bytes.
//
// A value of 0 is legal and produces empty digests. Values at or above
// the algorithm's digest size leave the digest untouched; output is never
// padded.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) SetTruncation(n uint) *DigestConfig {
	c.truncateTo = n
	c.truncate = true
	return c
}

// SetChunkSize sets the chunk size for streaming reads.
//
// A size of 0 streams with io.Copy's default buffer. Non-zero values
// bound the copy buffer for memory control with large inputs.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) SetChunkSize(size int) *DigestConfig {
	c.chunkSize = size
	return c
}

// SetMultihash sets whether Render emits multihash framing instead of
// bare hex.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) SetMultihash(enabled bool) *DigestConfig {
	c.multihash = enabled
	return c
}

// Validate checks the configuration for use.
//
// Returns an error if the algorithm is not registered or the chunk size
// is negative. Truncation values need no validation: 0 and oversized
// requests are both legal.
func (c *DigestConfig) Validate() error {
	if _, err := algorithms.Lookup(c.algorithm); err != nil {
		return err
	}
	if c.chunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", c.chunkSize)
	}
	return nil
}

// DigestReader streams r through a digest handle and returns the digest,
// truncated when truncation is configured.
func (c *DigestConfig) DigestReader(r io.Reader) (digests.Digest, error) {
	h, err := handles.NewDigest(c.algorithm)
	if err != nil {
		return digests.Digest{}, err
	}
	defer h.Close()

	if err := c.stream(h, r); err != nil {
		return digests.Digest{}, err
	}
	return c.finalize(h)
}

// DigestFile hashes the file at path.
//
// The file is streamed in configured chunks; it is never loaded whole.
func (c *DigestConfig) DigestFile(path string) (digests.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	d, err := c.DigestReader(f)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return d, nil
}

// KeyedDigestReader streams r through a keyed digest handle and returns
// the MAC.
//
// Ownership of secret transfers to the call: the slice is zeroized
// before return on every path.
func (c *DigestConfig) KeyedDigestReader(secret []byte, r io.Reader) (digests.Digest, error) {
	h, err := handles.NewKeyed(c.algorithm, secret)
	if err != nil {
		return digests.Digest{}, err
	}
	defer h.Close()

	if err := c.stream(h, r); err != nil {
		return digests.Digest{}, err
	}
	return c.finalize(h)
}

// KeyedDigestFile computes the MAC of the file at path.
//
// Ownership of secret transfers to the call, including when the file
// cannot be opened.
func (c *DigestConfig) KeyedDigestFile(secret []byte, path string) (digests.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		secure.Zeroize(secret)
		return digests.Digest{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	d, err := c.KeyedDigestReader(secret, f)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return d, nil
}

// Render formats a digest for output according to the configuration.
//
// The default is bare hex. With multihash enabled the digest is wrapped
// in multihash framing (varint code, varint length, digest bytes) and
// hex encoded. Keyed digests carry no multicodec code and are rejected
// when multihash output is requested.
func (c *DigestConfig) Render(d digests.Digest) (string, error) {
	if !c.multihash {
		return d.Hex(), nil
	}

	desc, err := algorithms.Lookup(d.Algorithm())
	if err != nil {
		return "", fmt.Errorf("no multicodec code for %s digests: %w", d.Algorithm(), err)
	}
	return d.MultihashHex(desc.Code)
}

// stream copies r into w using the configured chunk size.
func (c *DigestConfig) stream(w io.Writer, r io.Reader) error {
	if c.chunkSize > 0 {
		buf := make([]byte, c.chunkSize)
		_, err := io.CopyBuffer(w, r, buf)
		return err
	}
	_, err := io.Copy(w, r)
	return err
}

// finalize completes the handle, honoring configured truncation.
func (c *DigestConfig) finalize(h *handles.Handle) (digests.Digest, error) {
	if c.truncate {
		return h.FinalizeTruncated(c.truncateTo)
	}
	return h.Finalize()
}
