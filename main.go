package main

import (
	"os"

	"github.com/AnyUserName/imgbudget/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
