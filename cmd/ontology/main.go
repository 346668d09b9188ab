package main

import (
	"os"

	"miren.dev/ontology/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
