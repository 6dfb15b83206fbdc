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

package engines_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
	"github.com/sampras343/hashctx/pkg/hashing/engines"
)

func mustDescriptor(t *testing.T, name string) algorithms.Descriptor {
	t.Helper()
	d, err := algorithms.Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	return d
}

func mustContext(t *testing.T, name string) *engines.Context {
	t.Helper()
	c, err := engines.New(mustDescriptor(t, name))
	if err != nil {
		t.Fatalf("New(%q) error = %v", name, err)
	}
	return c
}

func TestNew_UnusableDescriptor(t *testing.T) {
	tests := []struct {
		name string
		desc algorithms.Descriptor
	}{
		{"zero descriptor", algorithms.Descriptor{}},
		{"missing factory", algorithms.Descriptor{Name: "broken", Size: 32}},
		{"zero size", algorithms.Descriptor{Name: "broken", New: mustDescriptor(t, algorithms.SHA256).New}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := engines.New(tt.desc)
			if err == nil {
				t.Fatal("New() succeeded with unusable descriptor")
			}
			if !engines.IsAlgorithmInit(err) {
				t.Errorf("New() error = %v, want algorithm-init", err)
			}
			if c != nil {
				t.Error("New() returned a context alongside an error")
			}
		})
	}
}

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		input     string
		want      string
	}{
		{"md5 empty", algorithms.MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"sha256 empty", algorithms.SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha1 abc", algorithms.SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256 abc", algorithms.SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha256 abcd", algorithms.SHA256, "abcd", "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"},
		{"sha512 abc", algorithms.SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustContext(t, tt.algorithm)

			if err := c.Update([]byte(tt.input)); err != nil {
				t.Fatalf("Update() error = %v", err)
			}

			d, err := c.Finalize()
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if got := d.Hex(); got != tt.want {
				t.Errorf("Finalize() = %q, want %q", got, tt.want)
			}
			if d.Algorithm() != tt.algorithm {
				t.Errorf("digest algorithm = %q, want %q", d.Algorithm(), tt.algorithm)
			}
		})
	}
}

func TestUpdate_EmptyIsLegal(t *testing.T) {
	// An empty update must succeed and leave the outcome untouched.
	with := mustContext(t, algorithms.SHA256)
	if err := with.Update(nil); err != nil {
		t.Fatalf("Update(nil) error = %v", err)
	}
	if err := with.Update([]byte{}); err != nil {
		t.Fatalf("Update(empty) error = %v", err)
	}
	if err := with.Update([]byte("payload")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	without := mustContext(t, algorithms.SHA256)
	if err := without.Update([]byte("payload")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	dw, err := with.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	dwo, err := without.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !dw.Equal(dwo) {
		t.Errorf("empty updates changed the digest: %s != %s", dw, dwo)
	}
}

func TestIncrementalEqualsOneShot(t *testing.T) {
	const input = "the quick brown fox jumps over the lazy dog"
	pieces := []string{"the quick ", "", "brown fox ", "jumps over", " the lazy dog"}

	for _, algorithm := range algorithms.Supported() {
		t.Run(algorithm, func(t *testing.T) {
			oneShot := mustContext(t, algorithm)
			if err := oneShot.Update([]byte(input)); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			want, err := oneShot.Finalize()
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}

			incremental := mustContext(t, algorithm)
			for _, p := range pieces {
				if err := incremental.Update([]byte(p)); err != nil {
					t.Fatalf("Update(%q) error = %v", p, err)
				}
			}
			got, err := incremental.Finalize()
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}

			if !got.Equal(want) {
				t.Errorf("incremental digest %s != one-shot digest %s", got, want)
			}
		})
	}
}

func TestUpdateAfterFinalize(t *testing.T) {
	c := mustContext(t, algorithms.SHA256)
	if err := c.Update([]byte("abcd")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	d, err := c.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	err = c.Update([]byte("more"))
	if err == nil {
		t.Fatal("Update() after Finalize() succeeded")
	}
	if !engines.IsInvalidState(err) {
		t.Errorf("Update() error = %v, want invalid-state", err)
	}

	// The already produced digest must be unaffected by the rejected update.
	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"
	if got := d.Hex(); got != want {
		t.Errorf("digest changed after rejected update: %q, want %q", got, want)
	}
}

func TestFinalizeTwice(t *testing.T) {
	c := mustContext(t, algorithms.SHA256)
	if err := c.Update([]byte("abcd")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, err := c.Finalize(); err != nil {
		t.Fatalf("first Finalize() error = %v", err)
	}

	_, err := c.Finalize()
	if err == nil {
		t.Fatal("second Finalize() succeeded")
	}
	if !engines.IsInvalidState(err) {
		t.Errorf("second Finalize() error = %v, want invalid-state", err)
	}
}

func TestOperationsAfterDestroy(t *testing.T) {
	c := mustContext(t, algorithms.SHA256)
	c.Destroy()

	if err := c.Update([]byte("abcd")); err == nil {
		t.Error("Update() after Destroy() succeeded")
	} else if !engines.IsInvalidState(err) {
		t.Errorf("Update() error = %v, want invalid-state", err)
	}

	if _, err := c.Finalize(); err == nil {
		t.Error("Finalize() after Destroy() succeeded")
	} else if !engines.IsInvalidState(err) {
		t.Errorf("Finalize() error = %v, want invalid-state", err)
	}

	if _, err := c.FinalizeTruncated(8); err == nil {
		t.Error("FinalizeTruncated() after Destroy() succeeded")
	} else if !engines.IsInvalidState(err) {
		t.Errorf("FinalizeTruncated() error = %v, want invalid-state", err)
	}
}

func TestStateTransitions(t *testing.T) {
	t.Run("active to finalized to destroyed", func(t *testing.T) {
		c := mustContext(t, algorithms.SHA256)
		if got := c.State(); got != engines.StateActive {
			t.Errorf("State() = %v, want %v", got, engines.StateActive)
		}

		if _, err := c.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if got := c.State(); got != engines.StateFinalized {
			t.Errorf("State() = %v, want %v", got, engines.StateFinalized)
		}

		c.Destroy()
		if got := c.State(); got != engines.StateDestroyed {
			t.Errorf("State() = %v, want %v", got, engines.StateDestroyed)
		}
	})

	t.Run("active straight to destroyed", func(t *testing.T) {
		c := mustContext(t, algorithms.SHA256)
		c.Destroy()
		if got := c.State(); got != engines.StateDestroyed {
			t.Errorf("State() = %v, want %v", got, engines.StateDestroyed)
		}
	})
}

func TestDestroy_OtherContextsUnaffected(t *testing.T) {
	// Destroying one context leaves independently created contexts live.
	doomed := mustContext(t, algorithms.SHA256)
	survivor := mustContext(t, algorithms.SHA256)

	if err := survivor.Update([]byte("abcd")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	doomed.Destroy()
	doomed.Destroy() // second destroy of the same context must not disturb others

	d, err := survivor.Finalize()
	if err != nil {
		t.Fatalf("Finalize() on survivor error = %v", err)
	}

	const want = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"
	if got := d.Hex(); got != want {
		t.Errorf("survivor digest = %q, want %q", got, want)
	}
}

func TestFinalizeTruncated(t *testing.T) {
	desc := mustDescriptor(t, algorithms.SHA256)

	full, err := engines.Sum(desc, []byte("abcd"))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}

	// Every length from 0 to the natural size emits exactly that prefix.
	for k := 0; k <= desc.Size; k++ {
		c := mustContext(t, algorithms.SHA256)
		if err := c.Update([]byte("abcd")); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		d, err := c.FinalizeTruncated(uint(k))
		if err != nil {
			t.Fatalf("FinalizeTruncated(%d) error = %v", k, err)
		}
		if d.Size() != k {
			t.Errorf("FinalizeTruncated(%d) size = %d, want %d", k, d.Size(), k)
		}
		if !bytes.Equal(d.Value(), full.Value()[:k]) {
			t.Errorf("FinalizeTruncated(%d) = %x, want prefix %x", k, d.Value(), full.Value()[:k])
		}
	}

	// Requests beyond the natural size clamp down, never pad.
	for _, k := range []uint{uint(desc.Size) + 1, 1000, ^uint(0)} {
		c := mustContext(t, algorithms.SHA256)
		if err := c.Update([]byte("abcd")); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		d, err := c.FinalizeTruncated(k)
		if err != nil {
			t.Fatalf("FinalizeTruncated(%d) error = %v", k, err)
		}
		if d.Size() != desc.Size {
			t.Errorf("FinalizeTruncated(%d) size = %d, want natural %d", k, d.Size(), desc.Size)
		}
		if !bytes.Equal(d.Value(), full.Value()) {
			t.Errorf("FinalizeTruncated(%d) = %x, want full %x", k, d.Value(), full.Value())
		}
	}
}

func TestFinalizeTruncated_ZeroYieldsEmpty(t *testing.T) {
	c := mustContext(t, algorithms.SHA256)
	if err := c.Update([]byte("abcd")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	d, err := c.FinalizeTruncated(0)
	if err != nil {
		t.Fatalf("FinalizeTruncated(0) error = %v", err)
	}
	if d.Size() != 0 {
		t.Errorf("FinalizeTruncated(0) size = %d, want 0", d.Size())
	}

	// Zero-length finalize still consumes the context.
	if _, err := c.Finalize(); err == nil {
		t.Error("Finalize() after FinalizeTruncated(0) succeeded")
	}
}

func TestWrite_IOCopy(t *testing.T) {
	const input = "streamed through io.Copy"

	c := mustContext(t, algorithms.SHA256)
	n, err := strings.NewReader(input).WriteTo(c)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(len(input)) {
		t.Errorf("WriteTo() wrote %d bytes, want %d", n, len(input))
	}

	got, err := c.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	want, err := engines.Sum(mustDescriptor(t, algorithms.SHA256), []byte(input))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("streamed digest %s != direct digest %s", got, want)
	}
}

func TestWrite_AfterFinalizeFails(t *testing.T) {
	c := mustContext(t, algorithms.SHA256)
	if _, err := c.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	n, err := c.Write([]byte("late"))
	if err == nil {
		t.Fatal("Write() after Finalize() succeeded")
	}
	if n != 0 {
		t.Errorf("Write() reported %d bytes written on failure", n)
	}
	if !engines.IsInvalidState(err) {
		t.Errorf("Write() error = %v, want invalid-state", err)
	}
}

func TestAccessors(t *testing.T) {
	c := mustContext(t, algorithms.SHA512)

	if got := c.DigestName(); got != algorithms.SHA512 {
		t.Errorf("DigestName() = %q, want %q", got, algorithms.SHA512)
	}
	if got := c.DigestSize(); got != 64 {
		t.Errorf("DigestSize() = %d, want 64", got)
	}

	// DigestSize reports the natural size even after truncated finalize.
	if _, err := c.FinalizeTruncated(8); err != nil {
		t.Fatalf("FinalizeTruncated() error = %v", err)
	}
	if got := c.DigestSize(); got != 64 {
		t.Errorf("DigestSize() after truncated finalize = %d, want 64", got)
	}
}
