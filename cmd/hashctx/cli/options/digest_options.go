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

package options

import (
	"github.com/spf13/cobra"

	"github.com/sampras343/hashctx/pkg/config"
)

// HashOptions collects the flags of the hash command.
type HashOptions struct {
	DigestFlags
	MultihashFlags
}

// AddFlags adds all hash command flags to the cobra command.
func (o *HashOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.DigestFlags, &o.MultihashFlags)
}

// ToDigestConfig converts CLI options to the library's digest configuration.
//
// Truncation applies only when --truncate was passed explicitly, so that
// --truncate=0 is honored as a request for zero bytes rather than mistaken
// for the flag's default.
func (o *HashOptions) ToDigestConfig(cmd *cobra.Command) *config.DigestConfig {
	cfg := config.NewDigestConfig().
		SetAlgorithm(o.Algorithm).
		SetChunkSize(o.ChunkSize).
		SetMultihash(o.Multihash)
	if cmd.Flags().Changed("truncate") {
		cfg.SetTruncation(o.TruncateTo)
	}
	return cfg
}

// HMACOptions collects the flags of the hmac command.
type HMACOptions struct {
	DigestFlags
	KeyFlags
}

// AddFlags adds all hmac command flags to the cobra command.
func (o *HMACOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.DigestFlags, &o.KeyFlags)
}

// ToDigestConfig converts CLI options to the library's digest configuration.
// Truncation follows the same explicit-only rule as the hash command.
func (o *HMACOptions) ToDigestConfig(cmd *cobra.Command) *config.DigestConfig {
	cfg := config.NewDigestConfig().
		SetAlgorithm(o.Algorithm).
		SetChunkSize(o.ChunkSize)
	if cmd.Flags().Changed("truncate") {
		cfg.SetTruncation(o.TruncateTo)
	}
	return cfg
}
