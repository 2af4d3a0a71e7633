package main

import (
	"os"

	"ghsdk/internal/cli"
	"ghsdk/internal/systemcodes"
)

func main() {
	err := cli.Execute()
	if err != nil {
		os.Exit(systemcodes.ErrorCodeGeneric)
	}
}
