package main

import (
	"fmt"
	"os"

	"fitnesshub/fitness-app/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
