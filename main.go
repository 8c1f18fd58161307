// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for the araçtakip terminal client.
//
// Usage:
//
//	go run . [flags]
//	./aractakip [flags]
//
// This launches the araçtakip CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/aractakip/aractakip/internal/cli"
)

// main is the entrypoint for the araçtakip CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("aractakip CLI error: %v", err)
		os.Exit(1)
	}
}
