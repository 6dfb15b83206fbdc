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

package options_test

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sampras343/hashctx/cmd/hashctx/cli/options"
	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
	"github.com/sampras343/hashctx/pkg/logging"
)

const sha256ABC = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func parseHashFlags(t *testing.T, args ...string) (*options.HashOptions, *cobra.Command) {
	t.Helper()

	o := &options.HashOptions{}
	cmd := &cobra.Command{Use: "hash"}
	o.AddFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", args, err)
	}
	return o, cmd
}

func TestHashOptions_Defaults(t *testing.T) {
	o, cmd := parseHashFlags(t)

	if o.Algorithm != algorithms.SHA256 {
		t.Errorf("Expected default algorithm %q, got %q", algorithms.SHA256, o.Algorithm)
	}
	if o.ChunkSize != 8192 {
		t.Errorf("Expected default chunk size 8192, got %d", o.ChunkSize)
	}
	if o.Multihash {
		t.Error("Expected multihash to default to false")
	}

	cfg := o.ToDigestConfig(cmd)
	d, err := cfg.DigestReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("DigestReader() error = %v", err)
	}
	if d.Hex() != sha256ABC {
		t.Errorf("Expected digest %s, got %s", sha256ABC, d.Hex())
	}
}

func TestHashOptions_TruncateOnlyWhenExplicit(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantHex string
	}{
		{
			name:    "no truncate flag emits full digest",
			args:    nil,
			wantHex: sha256ABC,
		},
		{
			name:    "explicit truncate emits prefix",
			args:    []string{"--truncate", "8"},
			wantHex: sha256ABC[:16],
		},
		{
			name:    "explicit zero truncation emits empty digest",
			args:    []string{"--truncate", "0"},
			wantHex: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, cmd := parseHashFlags(t, tt.args...)

			d, err := o.ToDigestConfig(cmd).DigestReader(strings.NewReader("abc"))
			if err != nil {
				t.Fatalf("DigestReader() error = %v", err)
			}
			if d.Hex() != tt.wantHex {
				t.Errorf("Expected digest %q, got %q", tt.wantHex, d.Hex())
			}
		})
	}
}

func TestHashOptions_Algorithm(t *testing.T) {
	o, cmd := parseHashFlags(t, "-a", algorithms.SHA512)

	d, err := o.ToDigestConfig(cmd).DigestReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("DigestReader() error = %v", err)
	}
	if d.Size() != 64 {
		t.Errorf("Expected a 64-byte sha512 digest, got %d bytes", d.Size())
	}
	if d.Algorithm() != algorithms.SHA512 {
		t.Errorf("Expected algorithm %q, got %q", algorithms.SHA512, d.Algorithm())
	}
}

func TestHashOptions_Multihash(t *testing.T) {
	o, cmd := parseHashFlags(t, "--multihash")

	cfg := o.ToDigestConfig(cmd)
	d, err := cfg.DigestReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("DigestReader() error = %v", err)
	}

	out, err := cfg.Render(d)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "1220" + sha256ABC
	if out != want {
		t.Errorf("Expected %s, got %s", want, out)
	}
}

func TestHMACOptions(t *testing.T) {
	o := &options.HMACOptions{}
	cmd := &cobra.Command{Use: "hmac"}
	o.AddFlags(cmd)

	if err := cmd.ParseFlags([]string{"--key-file", "/tmp/hmac.key", "-a", algorithms.BLAKE2B256}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if o.Algorithm != algorithms.BLAKE2B256 {
		t.Errorf("Expected algorithm %q, got %q", algorithms.BLAKE2B256, o.Algorithm)
	}
	if o.KeyFile != "/tmp/hmac.key" {
		t.Errorf("Expected key file '/tmp/hmac.key', got %q", o.KeyFile)
	}

	// The hmac command does not expose --multihash.
	if cmd.Flags().Lookup("multihash") != nil {
		t.Error("Expected hmac flags to not include --multihash")
	}
}

func TestKeyFlags_ToKeyConfig(t *testing.T) {
	t.Run("file source when flag is set", func(t *testing.T) {
		o := options.KeyFlags{KeyFile: "/tmp/hmac.key"}
		kc := o.ToKeyConfig()
		if kc.Path != "/tmp/hmac.key" {
			t.Errorf("Expected Path '/tmp/hmac.key', got %q", kc.Path)
		}
		if kc.EnvVar != "" {
			t.Errorf("Expected empty EnvVar, got %q", kc.EnvVar)
		}
	})

	t.Run("environment fallback when flag is empty", func(t *testing.T) {
		o := options.KeyFlags{}
		kc := o.ToKeyConfig()
		if kc.Path != "" {
			t.Errorf("Expected empty Path, got %q", kc.Path)
		}
		if kc.EnvVar != options.KeyEnvVar {
			t.Errorf("Expected EnvVar %q, got %q", options.KeyEnvVar, kc.EnvVar)
		}
	})
}

func TestRootOptions_Logging(t *testing.T) {
	o := &options.RootOptions{}
	cmd := &cobra.Command{Use: "hashctx"}
	o.AddFlags(cmd)

	if err := cmd.ParseFlags([]string{"--log-level", "debug", "--log-format", "json"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if o.GetLogLevel() != logging.LevelDebug {
		t.Errorf("Expected LevelDebug, got %v", o.GetLogLevel())
	}
	if o.GetLogFormat() != logging.FormatJSON {
		t.Errorf("Expected FormatJSON, got %v", o.GetLogFormat())
	}

	logger := o.NewLogger()
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
	if logger.GetLevel() != logging.LevelDebug {
		t.Errorf("Expected logger level LevelDebug, got %v", logger.GetLevel())
	}
}

func TestRootOptions_TimeoutDefault(t *testing.T) {
	o := &options.RootOptions{}
	cmd := &cobra.Command{Use: "hashctx"}
	o.AddFlags(cmd)

	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if o.Timeout != options.DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", options.DefaultTimeout, o.Timeout)
	}
}
