package main

import (
	"os"

	"task-quick-add/cmd/quickadd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
