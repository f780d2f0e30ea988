// Command assessctl is the operator CLI for assessrec: catalog seeding and
// batch predictions.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
