package main

import (
	"os"

	"github.com/ajith2003madhuvana/learneye-ed-platform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
