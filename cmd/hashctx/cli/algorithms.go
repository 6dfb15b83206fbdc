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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sampras343/hashctx/pkg/hashing/algorithms"
)

// Algorithms creates the algorithms command listing the registered hash
// algorithms with their digest sizes, block sizes, and multicodec codes.
func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the registered hash algorithms.",
		Long: `List the registered hash algorithms.

Prints one line per algorithm: the registry name accepted by
--algorithm, the digest size, the block size, and the multicodec code
used for multihash framing.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range algorithms.Supported() {
				desc, err := algorithms.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s  digest %3d bytes  block %3d bytes  code 0x%x\n",
					desc.Name, desc.Size, desc.BlockSize, desc.Code)
			}
			return nil
		},
	}
}
