// normalize-triplet - canonical platform triplets for binary artifacts
//
// normalize-triplet rewrites the many spellings of an
// architecture/OS/libc triplet into the single form used to key
// platform-specific builds.
//
// Copyright (c) 2026 The normalize-triplet Authors
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/vixigi/julia/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
