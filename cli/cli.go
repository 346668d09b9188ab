package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"miren.dev/ontology/cli/commands"
	"miren.dev/ontology/version"
)

func Run(args []string) int {
	c := cli.NewCLI("ontology", version.Version)
	c.Commands = commands.AllCommands()
	c.Args = args[1:]

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return 1
	}

	return exitStatus
}
