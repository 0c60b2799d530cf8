package main

import (
	"os"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
