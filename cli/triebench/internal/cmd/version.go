package cmd

import (
	"github.com/coniks-sys/merkletrie/cli"
)

var versionCmd = cli.NewVersionCommand("triebench")

func init() {
	RootCmd.AddCommand(versionCmd)
}
