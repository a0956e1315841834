// Command nautigo canonicalizes and isomorphism-tests graphs via the
// ordered-partition refinement search in package search, exposing the
// exact flag surface spec.md §6 describes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
