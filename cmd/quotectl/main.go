// Command quotectl runs the quote pipeline from the terminal: trade detection,
// pricing of an item file and full generation against the configured provider.
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
