package main

import (
	"os"

	"github.com/readerline/readerline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
