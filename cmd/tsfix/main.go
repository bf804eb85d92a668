package main

import (
	"fmt"
	"os"

	"github.com/tsfix/tsfix/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tsfix:", err)
		os.Exit(1)
	}
}
