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

// Package engines implements streaming digest contexts.
//
// A Context absorbs data incrementally and emits a single digest when
// finalized. Plain contexts compute a hash; keyed contexts compute an HMAC
// over the same lifecycle. The lifecycle is a one-way state machine
// (active, finalized, destroyed) checked before every operation, so a
// consumed or released context can never silently produce a second digest.
//
// Contexts are not safe for concurrent use. Distinct contexts are fully
// independent and may be used from different goroutines.
package engines

import (
	"crypto/hmac"
	"hash"
	"io"

	"github.com/sampras343/hashctx/internal/secure"
	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
	"github.com/sampras343/hashctx/pkg/hashing/digests"
)

var _ io.Writer = (*Context)(nil)

// Context is a single-use streaming digest computation.
//
// Create one with New or NewKeyed, feed it with Update (or io.Copy via
// Write), then consume it exactly once with Finalize or FinalizeTruncated.
// Destroy releases the context; it is safe to destroy a context in any
// state, after which every operation fails with an invalid-state error.
type Context struct {
	desc  algorithms.Descriptor
	name  string    // digest name: desc.Name, or "hmac-" + desc.Name when keyed
	h     hash.Hash // accumulator; nil once finalized or destroyed
	state State
}

// New creates an ACTIVE digest context for the given algorithm descriptor.
//
// Returns an algorithm-init error if the descriptor is unusable or its
// factory fails; nothing is retained on failure.
func New(desc algorithms.Descriptor) (*Context, error) {
	if err := checkDescriptor(desc); err != nil {
		return nil, err
	}

	h, err := desc.New()
	if err != nil {
		return nil, NewContextErrorWithAlgorithm(ErrTypeAlgorithmInit, desc.Name,
			"creating hash state", err)
	}

	return &Context{
		desc:  desc,
		name:  desc.Name,
		h:     h,
		state: StateActive,
	}, nil
}

// NewKeyed creates an ACTIVE keyed digest context computing
// HMAC-<algorithm> seeded with secret.
//
// NewKeyed takes ownership of the secret slice: it is zeroized before
// return on every path, success or failure. Callers needing the key
// afterwards must pass a copy. Keys longer than the algorithm's block size
// are pre-hashed per RFC 2104; short keys are zero-padded internally.
func NewKeyed(desc algorithms.Descriptor, secret []byte) (*Context, error) {
	defer secure.Zeroize(secret)

	if err := checkDescriptor(desc); err != nil {
		return nil, err
	}

	// Probe the factory before handing it to crypto/hmac, which has no
	// error path of its own.
	if _, err := desc.New(); err != nil {
		return nil, NewContextErrorWithAlgorithm(ErrTypeAlgorithmInit, desc.Name,
			"creating hash state", err)
	}

	// hmac.New copies the key into its pads; the original slice holds the
	// only plaintext we own, and the deferred wipe clears it.
	mac := hmac.New(desc.NewHash, secret)

	return &Context{
		desc:  desc,
		name:  "hmac-" + desc.Name,
		h:     mac,
		state: StateActive,
	}, nil
}

// Update absorbs data into the context. Empty input is a legal no-op.
//
// Returns an invalid-state error, without mutating anything, if the
// context has been finalized or destroyed.
func (c *Context) Update(data []byte) error {
	if err := c.checkActive("update"); err != nil {
		return err
	}

	if len(data) > 0 {
		// hash.Hash.Write never returns an error.
		_, _ = c.h.Write(data)
	}
	return nil
}

// Write implements io.Writer so a context can be the target of io.Copy.
// It is Update with the writer calling convention.
func (c *Context) Write(p []byte) (int, error) {
	if err := c.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize consumes the context and returns the digest at the algorithm's
// natural size.
//
// The context transitions to FINALIZED and drops its accumulator, so a
// second finalize (or any further update) fails with an invalid-state
// error. The emitted digest is unaffected by such later attempts.
func (c *Context) Finalize() (digests.Digest, error) {
	return c.finalize(c.desc.Size)
}

// FinalizeTruncated is Finalize with the emitted length clamped to
// truncateTo bytes.
//
// The digest is computed at full size and the leading min(n, truncateTo)
// bytes are emitted, where n is the algorithm's natural size. Truncation
// only ever shortens: requests beyond n emit exactly n bytes, never
// padding. truncateTo of zero legally yields an empty digest. Plain and
// keyed contexts truncate identically.
func (c *Context) FinalizeTruncated(truncateTo uint) (digests.Digest, error) {
	n := c.desc.Size
	if truncateTo < uint(n) {
		n = int(truncateTo)
	}
	return c.finalize(n)
}

func (c *Context) finalize(n int) (digests.Digest, error) {
	if err := c.checkActive("finalize"); err != nil {
		return digests.Digest{}, err
	}

	sum := c.h.Sum(nil)
	d := digests.NewDigest(c.name, sum[:n])

	// The digest holds its own copy; wipe the working buffer so no extra
	// copy of a possibly-truncated MAC lingers.
	secure.Zeroize(sum)

	c.h = nil
	c.state = StateFinalized
	return d, nil
}

// Destroy releases the context from any state.
//
// It drops the accumulator and moves to DESTROYED; every later operation
// fails with an invalid-state error. Destroy has no side effects beyond
// releasing references. The engine assumes single-call discipline;
// exactly-once destruction across explicit close and garbage collection is
// the handle layer's job.
func (c *Context) Destroy() {
	c.h = nil
	c.state = StateDestroyed
}

// State returns the current lifecycle state.
func (c *Context) State() State {
	return c.state
}

// DigestName returns the name carried by digests this context emits:
// the algorithm name, prefixed with "hmac-" for keyed contexts.
func (c *Context) DigestName() string {
	return c.name
}

// DigestSize returns the natural (untruncated) digest size in bytes.
func (c *Context) DigestSize() int {
	return c.desc.Size
}

func (c *Context) checkActive(op string) error {
	if c.state != StateActive {
		return NewContextErrorWithAlgorithm(ErrTypeInvalidState, c.name,
			"cannot "+op+": context is "+c.state.String(), nil)
	}
	return nil
}

func checkDescriptor(desc algorithms.Descriptor) error {
	if desc.Name == "" || desc.New == nil || desc.Size <= 0 {
		return NewContextErrorWithAlgorithm(ErrTypeAlgorithmInit, desc.Name,
			"descriptor is unusable", nil)
	}
	return nil
}
