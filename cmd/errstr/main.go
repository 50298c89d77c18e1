// Command errstr decodes OpenSSL error codes.
package main

import (
	"fmt"
	"os"

	"github.com/golang-fips/cryptonative/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "errstr:", err)
		os.Exit(1)
	}
}
