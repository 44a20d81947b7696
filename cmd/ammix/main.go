package main

import (
	"os"

	"github.com/lugondev/go-ammix/cmd/ammix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
