// Command libctl is the operator CLI for the library backend. It shares
// configuration and wiring with the server but runs one task and exits.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
