// Command halcon runs the halcon interpreter: a REPL with no arguments, or
// a single .hc source file given as the first argument.
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
