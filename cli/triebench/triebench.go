// Executable trie benchmark harness. Run "triebench init" to write a
// default config.toml, then "triebench run" to measure it.
package main

import (
	"github.com/coniks-sys/merkletrie/cli"
	"github.com/coniks-sys/merkletrie/cli/triebench/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
