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

// Package algorithms maintains the catalog of digest algorithms known to
// hashctx. Each algorithm is described by a Descriptor carrying its canonical
// name, output and block sizes, the multicodec code used when rendering
// digests as multihashes, and a factory for the underlying hash state.
//
// The built-in catalog is registered at package init time. Callers may
// extend it with Register for algorithms not shipped here.
package algorithms

import (
	"crypto/md5"  //nolint:gosec // md5 is part of the supported catalog, not used for security decisions here
	"crypto/sha1" //nolint:gosec // sha1 is part of the supported catalog, not used for security decisions here
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Canonical algorithm names accepted by Lookup and the CLI.
const (
	MD5        = "md5"
	SHA1       = "sha1"
	SHA256     = "sha256"
	SHA512     = "sha512"
	SHA3_256   = "sha3-256"
	SHA3_512   = "sha3-512"
	BLAKE2B256 = "blake2b-256"
	BLAKE2B512 = "blake2b-512"
)

// Multicodec codes for the built-in algorithms, from the multiformats
// code table. Used when a digest is rendered as a multihash.
const (
	CodeMD5        = 0xd5
	CodeSHA1       = 0x11
	CodeSHA256     = 0x12
	CodeSHA512     = 0x13
	CodeSHA3_256   = 0x16
	CodeSHA3_512   = 0x14
	CodeBLAKE2B256 = 0xb220
	CodeBLAKE2B512 = 0xb240
)

// HashFactory creates a fresh hash state for one digest computation.
type HashFactory func() (hash.Hash, error)

// Descriptor describes a single digest algorithm.
type Descriptor struct {
	// Name is the canonical lowercase identifier, e.g. "sha256".
	Name string

	// Size is the byte length of the untruncated digest.
	Size int

	// BlockSize is the internal block size in bytes. HMAC keys longer
	// than this are pre-hashed per RFC 2104.
	BlockSize int

	// Code is the multicodec code used for multihash rendering.
	Code uint64

	// New creates a fresh hash state. Implementations must return an
	// independent state on every call.
	New HashFactory
}

// NewHash creates a fresh hash state, panicking if the factory fails.
//
// It adapts the fallible New factory to the func() hash.Hash shape that
// crypto/hmac expects. Callers must have validated the descriptor with one
// successful New call first; factories are deterministic, so a second
// failure indicates a programming error.
func (d Descriptor) NewHash() hash.Hash {
	h, err := d.New()
	if err != nil {
		panic("algorithms: factory for " + d.Name + " failed after successful probe: " + err.Error())
	}
	return h
}

func init() {
	MustRegister(Descriptor{
		Name:      MD5,
		Size:      md5.Size,
		BlockSize: md5.BlockSize,
		Code:      CodeMD5,
		New:       func() (hash.Hash, error) { return md5.New(), nil }, //nolint:gosec
	})
	MustRegister(Descriptor{
		Name:      SHA1,
		Size:      sha1.Size,
		BlockSize: sha1.BlockSize,
		Code:      CodeSHA1,
		New:       func() (hash.Hash, error) { return sha1.New(), nil }, //nolint:gosec
	})
	MustRegister(Descriptor{
		Name:      SHA256,
		Size:      sha256.Size,
		BlockSize: sha256.BlockSize,
		Code:      CodeSHA256,
		New:       func() (hash.Hash, error) { return sha256.New(), nil },
	})
	MustRegister(Descriptor{
		Name:      SHA512,
		Size:      sha512.Size,
		BlockSize: sha512.BlockSize,
		Code:      CodeSHA512,
		New:       func() (hash.Hash, error) { return sha512.New(), nil },
	})
	MustRegister(Descriptor{
		Name:      SHA3_256,
		Size:      32,
		BlockSize: 136,
		Code:      CodeSHA3_256,
		New:       func() (hash.Hash, error) { return sha3.New256(), nil },
	})
	MustRegister(Descriptor{
		Name:      SHA3_512,
		Size:      64,
		BlockSize: 72,
		Code:      CodeSHA3_512,
		New:       func() (hash.Hash, error) { return sha3.New512(), nil },
	})
	MustRegister(Descriptor{
		Name:      BLAKE2B256,
		Size:      32,
		BlockSize: blake2b.BlockSize,
		Code:      CodeBLAKE2B256,
		New:       func() (hash.Hash, error) { return blake2b.New256(nil) },
	})
	MustRegister(Descriptor{
		Name:      BLAKE2B512,
		Size:      blake2b.Size,
		BlockSize: blake2b.BlockSize,
		Code:      CodeBLAKE2B512,
		New:       func() (hash.Hash, error) { return blake2b.New512(nil) },
	})
}
