package main

import (
	"context"
	"fmt"
	"os"

	"github.com/seyallius/treeclip/internal/cli"
)

const version = "2.0.0"

func main() {
	cmd := cli.New(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
