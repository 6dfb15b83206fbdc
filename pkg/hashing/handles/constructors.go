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

package handles

import (
	"github.com/sampras343/hashctx/internal/secure"
	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
	"github.com/sampras343/hashctx/pkg/hashing/engines"
)

// NewDigest creates a handle owning a fresh digest context for the named
// algorithm.
//
// Returns an algorithm-init error if the name is not registered or the
// context cannot be constructed.
func NewDigest(algorithm string) (*Handle, error) {
	desc, err := algorithms.Lookup(algorithm)
	if err != nil {
		return nil, engines.NewContextErrorWithAlgorithm(engines.ErrTypeAlgorithmInit,
			algorithm, "unsupported algorithm", err)
	}

	ctx, err := engines.New(desc)
	if err != nil {
		return nil, err
	}
	return Wrap(ctx), nil
}

// NewKeyed creates a handle owning a fresh keyed digest context computing
// HMAC-<algorithm> under secret.
//
// The secret ownership contract is engines.NewKeyed's: the slice is
// zeroized before return on every path, including an unknown algorithm
// name.
func NewKeyed(algorithm string, secret []byte) (*Handle, error) {
	desc, err := algorithms.Lookup(algorithm)
	if err != nil {
		secure.Zeroize(secret)
		return nil, engines.NewContextErrorWithAlgorithm(engines.ErrTypeAlgorithmInit,
			algorithm, "unsupported algorithm", err)
	}

	ctx, err := engines.NewKeyed(desc, secret)
	if err != nil {
		return nil, err
	}
	return Wrap(ctx), nil
}

// NewHMAC creates a handle computing HMAC-SHA256 under secret. It is
// NewKeyed fixed to the sha256 base hash.
func NewHMAC(secret []byte) (*Handle, error) {
	return NewKeyed(algorithms.SHA256, secret)
}
