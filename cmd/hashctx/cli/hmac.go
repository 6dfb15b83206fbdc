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
	"github.com/sampras343/hashctx/internal/secure"
	"github.com/sampras343/hashctx/pkg/config"
	"github.com/sampras343/hashctx/pkg/hashing/digests"
	"github.com/sampras343/hashctx/pkg/tracing"
)

// runHMAC computes the MAC of every input and prints one "<mac>  <name>"
// line per input. Every keyed context consumes the key copy it is handed,
// so each input gets a fresh copy; the master copy is wiped on return.
func runHMAC(ctx context.Context, o *options.HMACOptions, cfg *config.DigestConfig, args []string) error {
	logger := ro.NewObservability().Logger
	if len(args) == 0 {
		args = []string{"-"}
	}

	kc := o.ToKeyConfig()
	key, err := kc.LoadKey()
	if err != nil {
		return err
	}
	defer secure.Zeroize(key)

	attrs := map[string]interface{}{
		"hashctx.operation": "hmac",
		"hashctx.algorithm": o.Algorithm,
		"hashctx.inputs":    len(args),
	}
	return tracing.Run(ctx, "HMAC", attrs, func(ctx context.Context) error {
		for _, name := range args {
			if err := ctx.Err(); err != nil {
				return err
			}

			secret := append([]byte(nil), key...)

			var (
				d   digests.Digest
				err error
			)
			if name == "-" {
				d, err = cfg.KeyedDigestReader(secret, os.Stdin)
			} else {
				d, err = cfg.KeyedDigestFile(secret, name)
			}
			if err != nil {
				return err
			}

			rendered, err := cfg.Render(d)
			if err != nil {
				return err
			}

			logger.Debug("authenticated %s: %s (%d bytes)", name, d.Algorithm(), d.Size())
			fmt.Printf("%s  %s\n", rendered, name)
		}
		return nil
	})
}

// HMAC creates the hmac command for computing keyed digests of files or stdin.
//
// Returns a *cobra.Command configured for HMAC computation.
func HMAC() *cobra.Command {
	o := &options.HMACOptions{}

	long := `Compute HMACs of files or standard input.

Computes HMAC over each input, keyed with caller-provided key material
and built on the hash selected via --algorithm. Inputs are streamed the
same way as for the hash command; "-" or no arguments reads standard
input.

Key material is hex encoded. It is read from the file given via
--key-file, or from the ` + options.KeyEnvVar + ` environment variable when
the flag is not set. Key buffers are wiped as soon as the computation
no longer needs them.

One line is printed per input: the MAC in lowercase hex, two spaces,
and the input name. An explicit --truncate N emits only the leading N
bytes of each MAC, exactly as for plain digests.`

	cmd := &cobra.Command{
		Use:   "hmac [FILES ...]",
		Short: "Compute HMACs of files or standard input.",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.ToDigestConfig(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()
			return runHMAC(ctx, o, cfg, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}
