package main

import (
	"fmt"
	"os"

	"github.com/aussiebroadwan/links/internal/links/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "links: %v\n", err)
		os.Exit(1)
	}
}
