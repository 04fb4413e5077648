package main

import (
	"os"

	"github.com/milefashell/nostrstats/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
