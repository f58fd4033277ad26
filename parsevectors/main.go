// Command parsevectors converts a Khazad test-vector file into C source for
// khazad-vectors-test.c.
//
// Usage:
//
//	parsevectors khazad-tweak-test-vectors.txt > khazad-test-vectors.h
//
// The generated source is written to standard output. Set VECTORS_LOG_LEVEL
// to debug, info, warn or error to control diagnostics on standard error.
package main

import (
	"fmt"
	"io"
	"os"

	vectors "github.com/cmcqueen/khazad-vectors"
)

const logLevelEnv = "VECTORS_LOG_LEVEL"

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: parsevectors <vector-file>")
		return 1
	}

	log := vectors.NewTextLogger(stderr, vectors.ParseLevel(getenv(logLevelEnv)))
	if err := transpileFile(args[0], stdout, log); err != nil {
		fmt.Fprintf(stderr, "parsevectors: %v\n", err)
		return 1
	}
	return 0
}
