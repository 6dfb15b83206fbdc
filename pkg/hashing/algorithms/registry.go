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

package algorithms

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Descriptor)
	mu       sync.RWMutex
)

// Register registers a new algorithm descriptor under its Name.
//
// If an algorithm with the same name is already registered, an error is
// returned. Algorithm names are case-sensitive.
func Register(d Descriptor) error {
	mu.Lock()
	defer mu.Unlock()

	if d.Name == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}

	if d.New == nil {
		return fmt.Errorf("algorithm %q has no hash factory", d.Name)
	}

	if d.Size <= 0 {
		return fmt.Errorf("algorithm %q has invalid digest size %d", d.Name, d.Size)
	}

	if _, exists := registry[d.Name]; exists {
		return fmt.Errorf("algorithm %q already registered", d.Name)
	}

	registry[d.Name] = d
	return nil
}

// MustRegister registers an algorithm descriptor or panics on error.
//
// This is useful for package initialization where registration failure
// indicates a programming error that should be caught immediately.
func MustRegister(d Descriptor) {
	if err := Register(d); err != nil {
		panic(fmt.Sprintf("failed to register algorithm %q: %v", d.Name, err))
	}
}

// Lookup returns the descriptor registered for the given algorithm name.
//
// Returns an error listing the supported algorithms if the name is not
// registered.
func Lookup(name string) (Descriptor, error) {
	mu.RLock()
	d, exists := registry[name]
	mu.RUnlock()

	if !exists {
		return Descriptor{}, fmt.Errorf("unsupported algorithm: %s (supported: %v)",
			name, Supported())
	}

	return d, nil
}

// Supported returns a sorted list of registered algorithm names.
func Supported() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupported checks if an algorithm is registered.
func IsSupported(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[name]
	return exists
}

// Unregister removes an algorithm from the registry.
//
// This is primarily useful for testing. Returns an error if the algorithm
// is not registered.
func Unregister(name string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; !exists {
		return fmt.Errorf("algorithm %q not registered", name)
	}

	delete(registry, name)
	return nil
}
