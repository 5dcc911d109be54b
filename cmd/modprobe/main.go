package main

import (
	"os"

	"github.com/amikos-tech/pure-kernel32/cmd/modprobe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
