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
	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
)

// FlagAdder is implemented by any flag group that can register itself to a cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// DigestFlags contains flags controlling how digests are computed.
// These flags are shared by the hash and hmac commands.
type DigestFlags struct {
	// Algorithm selects the hash algorithm by registry name.
	Algorithm string
	// TruncateTo caps each digest at its leading bytes. It only applies
	// when the flag is passed explicitly; digests are full length by default.
	TruncateTo uint
	// ChunkSize bounds the copy buffer used for streaming reads.
	ChunkSize int
}

// AddFlags adds digest computation flags to the cobra command.
func (o *DigestFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", algorithms.SHA256,
		"Hash algorithm to use. See 'hashctx algorithms' for the registered set.")
	cmd.Flags().UintVar(&o.TruncateTo, "truncate", 0,
		"Emit only the leading N bytes of each digest. Values at or above the digest size emit it whole.")
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", 8192,
		"Chunk size in bytes for streaming reads. 0 streams without a bounded buffer.")
}

// MultihashFlags contains the multihash rendering flag.
// Only the hash command offers it: keyed digests carry no multicodec code.
type MultihashFlags struct {
	// Multihash renders digests in multihash framing instead of bare hex.
	Multihash bool
}

// AddFlags adds the multihash rendering flag to the cobra command.
func (o *MultihashFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.Multihash, "multihash", false,
		"Render digests in multihash framing (varint code, varint length, digest) instead of bare hex.")
}

// KeyFlags contains flags locating HMAC key material.
type KeyFlags struct {
	// KeyFile is the path to a hex-encoded key file.
	KeyFile string
}

// KeyEnvVar is the environment variable consulted for hex-encoded key
// material when --key-file is not given.
const KeyEnvVar = EnvPrefix + "_KEY"

// AddFlags adds key material flags to the cobra command.
func (o *KeyFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.KeyFile, "key-file", "",
		"Path to a hex-encoded key file. Falls back to the "+KeyEnvVar+" environment variable.")
	_ = cmd.MarkFlagFilename("key-file")
}

// ToKeyConfig converts the key flags to the library's key loading configuration.
func (o *KeyFlags) ToKeyConfig() config.KeyConfig {
	if o.KeyFile != "" {
		return config.KeyConfig{Path: o.KeyFile}
	}
	return config.KeyConfig{EnvVar: KeyEnvVar}
}

// AddAllFlags is a helper function to register multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}
