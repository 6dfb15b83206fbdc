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

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sampras343/hashctx/cmd/hashctx/cli/options"
	"github.com/sampras343/hashctx/pkg/config"
	"github.com/sampras343/hashctx/pkg/hashing/digests"
	"github.com/sampras343/hashctx/pkg/tracing"
)

// runHash digests every input and prints one "<digest>  <name>" line per
// input. Inputs are file paths; "-" or no arguments reads standard input.
func runHash(ctx context.Context, o *options.HashOptions, cfg *config.DigestConfig, args []string) error {
	logger := ro.NewObservability().Logger
	if len(args) == 0 {
		args = []string{"-"}
	}

	attrs := map[string]interface{}{
		"hashctx.operation": "hash",
		"hashctx.algorithm": o.Algorithm,
		"hashctx.inputs":    len(args),
		"hashctx.multihash": o.Multihash,
	}
	return tracing.Run(ctx, "Hash", attrs, func(ctx context.Context) error {
		for _, name := range args {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				d   digests.Digest
				err error
			)
			if name == "-" {
				d, err = cfg.DigestReader(os.Stdin)
			} else {
				d, err = cfg.DigestFile(name)
			}
			if err != nil {
				return err
			}

			rendered, err := cfg.Render(d)
			if err != nil {
				return err
			}

			logger.Debug("hashed %s: %s (%d bytes)", name, d.Algorithm(), d.Size())
			fmt.Printf("%s  %s\n", rendered, name)
		}
		return nil
	})
}

// Hash creates the hash command for computing digests of files or stdin.
//
// Returns a *cobra.Command configured for plain (unkeyed) digests.
func Hash() *cobra.Command {
	o := &options.HashOptions{}

	long := `Compute digests of files or standard input.

Each input is streamed through its own hash context in chunks (as per
--chunk-size), so arbitrarily large inputs are handled in constant
memory. With no arguments, or with "-" as an argument, standard input
is consumed instead.

One line is printed per input: the digest, two spaces, and the input
name. Digests are bare lowercase hex by default; --multihash wraps them
in multihash framing (varint code, varint length, digest bytes). An
explicit --truncate N emits only the leading N bytes of each digest,
clamped to the digest size, and never padded.`

	cmd := &cobra.Command{
		Use:   "hash [FILES ...]",
		Short: "Compute digests of files or standard input.",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.ToDigestConfig(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()
			return runHash(ctx, o, cfg, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}
