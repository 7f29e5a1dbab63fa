// Command proofdroid renders problem sets, applies inference rules to them
// and lists the problem sets published in the ProofDroid repository.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
