package main

import (
	"os"

	"github.com/omerfdk/sunsizer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
