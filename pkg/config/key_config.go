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

package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/sampras343/hashctx/internal/secure"
)

// KeyConfig handles HMAC key material configuration.
//
// Key material is hex encoded in both sources. The decoded bytes are
// returned to the caller, who takes ownership: every keyed constructor
// in this module zeroizes the slice it is handed.
//
// Configuration Priority (first match wins):
//  1. If Path is set → load key from file
//  2. If EnvVar is set → load key from that environment variable
//  3. Otherwise → error
type KeyConfig struct {
	// Path is the file path to a hex-encoded key.
	Path string

	// EnvVar is the name of an environment variable holding a hex-encoded key.
	EnvVar string
}

// LoadKey loads and decodes the configured key material.
//
// Surrounding whitespace is tolerated in both sources. The raw bytes
// read from the key file are zeroized once decoded.
//
// Returns the decoded key, or an error if no source is configured, the
// source is empty, or the material is not valid hex.
func (c *KeyConfig) LoadKey() ([]byte, error) {
	if c.Path != "" {
		raw, err := os.ReadFile(c.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}
		key, err := decodeKeyHex(string(raw))
		secure.Zeroize(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key file %s: %w", c.Path, err)
		}
		return key, nil
	}

	if c.EnvVar != "" {
		value := os.Getenv(c.EnvVar)
		if value == "" {
			return nil, fmt.Errorf("environment variable %s is not set", c.EnvVar)
		}
		key, err := decodeKeyHex(value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key from %s: %w", c.EnvVar, err)
		}
		return key, nil
	}

	return nil, fmt.Errorf("key path or environment variable is required")
}

// decodeKeyHex decodes trimmed hex key material, rejecting empty input.
func decodeKeyHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("key material is empty")
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("key material is not valid hex: %w", err)
	}
	return key, nil
}
