package main

import (
	"os"

	"markerscan/cmd/markerscan/app"
)

func main() {
	cmd := app.NewMarkerScanCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
