package main

import (
	"fmt"
	"os"

	"github.com/sol25-lang/sol25/cmd/sol25/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
