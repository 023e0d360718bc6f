package main

import (
	"os"

	"github.com/aerissecure/namedeck/internal/cli"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
