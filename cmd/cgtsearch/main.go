// Command cgtsearch is the CLI surface over the enumerate package: a
// thin dispatcher to the "search" subcommand. No "latex" subcommand is
// implemented (LaTeX emission is out of scope).
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "search":
		if err := search(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cgtsearch - combinatorial game value search over Domineering boards

Usage:
  cgtsearch search [options]

Run 'cgtsearch search -h' for the full option list.`)
}
