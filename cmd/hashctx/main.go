//
// Copyright 2025 The hashctx Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/sampras343/hashctx/cmd/hashctx/cli"
	"github.com/sampras343/hashctx/pkg/tracing"
)

type ExitCoder interface {
	error
	ExitCode() int
}

func main() {
	log.SetFlags(0)

	// No-op unless built with -tags=otel.
	if err := tracing.InitFromEnv(); err != nil {
		log.Fatalf("error initializing tracing: %v", err)
	}

	err := cli.New().Execute()
	shutdownTracing()

	if err != nil {
		var ec ExitCoder
		if errors.As(err, &ec) {
			log.Printf("error during command execution: %v", err)
			os.Exit(ec.ExitCode())
		}

		log.Fatalf("error during command execution: %v", err)
	}
}

// shutdownTracing flushes batched spans before the process exits. It runs
// before the ExitCoder handling because os.Exit skips deferred calls.
func shutdownTracing() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = tracing.Shutdown(ctx)
}
