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

// Package handles ties digest context lifetime to garbage collection.
//
// A Handle exclusively owns one engines.Context. The context is destroyed
// exactly once: either by an explicit Close, or by a GC finalizer when the
// handle becomes unreachable without one. The two paths are serialized
// through a sync.Once, so explicit close followed by collection (or the
// reverse) can never destroy twice.
//
// Reclamation timing is unspecified. Nothing may depend on when, or in
// what order across handles, finalizers run; destruction is safe
// arbitrarily late and has no observable side effects. A handle is not
// safe for concurrent use; distinct handles are fully independent.
package handles

import (
	"io"
	"runtime"
	"sync"

	"github.com/sampras343/hashctx/pkg/hashing/digests"
	"github.com/sampras343/hashctx/pkg/hashing/engines"
)

var _ io.Writer = (*Handle)(nil)

// Handle is an opaque owner of a single digest context.
type Handle struct {
	ctx       *engines.Context
	closeOnce sync.Once
}

// Wrap takes ownership of ctx and arms a GC finalizer that destroys it
// when the handle becomes unreachable.
//
// Wrapping a nil context yields a handle whose operations fail with an
// invalid-handle error.
func Wrap(ctx *engines.Context) *Handle {
	h := &Handle{ctx: ctx}
	runtime.SetFinalizer(h, func(h *Handle) { h.Close() })
	return h
}

// Close destroys the owned context and disarms the finalizer.
//
// Close is idempotent: only the first call (explicit or from the
// finalizer) destroys. After Close the handle still unwraps, so later
// operations report the context's destroyed state rather than a missing
// handle.
func (h *Handle) Close() {
	if h == nil {
		return
	}
	h.closeOnce.Do(func() {
		if h.ctx != nil {
			h.ctx.Destroy()
		}
		runtime.SetFinalizer(h, nil)
	})
}

// Context unwraps the handle.
//
// It fails with an invalid-handle error when the handle is nil or never
// received a context. A destroyed context still unwraps; lifecycle
// violations are the engine's to report, so use after destruction
// surfaces as an invalid-state error from the operation itself.
func (h *Handle) Context() (*engines.Context, error) {
	if h == nil || h.ctx == nil {
		return nil, engines.NewContextError(engines.ErrTypeInvalidHandle,
			"handle does not hold a digest context", nil)
	}
	return h.ctx, nil
}

// State reports the owned context's lifecycle state. A handle without a
// context reports StateDestroyed, since no operation can succeed on it.
func (h *Handle) State() engines.State {
	ctx, err := h.Context()
	if err != nil {
		return engines.StateDestroyed
	}
	return ctx.State()
}

// Update forwards to the owned context's Update.
func (h *Handle) Update(data []byte) error {
	ctx, err := h.Context()
	if err != nil {
		return err
	}
	err = ctx.Update(data)
	// Keep the handle reachable so the finalizer cannot destroy the
	// context mid-operation.
	runtime.KeepAlive(h)
	return err
}

// Write implements io.Writer so a handle can be the target of io.Copy.
func (h *Handle) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize forwards to the owned context's Finalize.
func (h *Handle) Finalize() (digests.Digest, error) {
	ctx, err := h.Context()
	if err != nil {
		return digests.Digest{}, err
	}
	d, err := ctx.Finalize()
	runtime.KeepAlive(h)
	return d, err
}

// FinalizeTruncated forwards to the owned context's FinalizeTruncated.
func (h *Handle) FinalizeTruncated(truncateTo uint) (digests.Digest, error) {
	ctx, err := h.Context()
	if err != nil {
		return digests.Digest{}, err
	}
	d, err := ctx.FinalizeTruncated(truncateTo)
	runtime.KeepAlive(h)
	return d, err
}
