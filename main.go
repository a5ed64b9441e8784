package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/go-workerconf/lib/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.DefaultOptions()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "workerconf: %v\n", err)
		os.Exit(1)
	}
}
