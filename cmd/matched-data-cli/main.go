// Command matched-data-cli generates key pairs for firewall payload
// logging and decrypts the encrypted matched data it produces.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
