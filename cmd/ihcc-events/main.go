package main

import (
	"os"

	"github.com/pfrederiksen/ihcc-events/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
