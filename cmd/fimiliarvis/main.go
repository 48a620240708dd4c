package main

import (
	"os"

	"github.com/RichDInfGrp/FimiliarVis/cmd/fimiliarvis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
