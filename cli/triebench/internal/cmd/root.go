package cmd

import (
	"github.com/coniks-sys/merkletrie/cli"
)

// RootCmd represents the base "triebench" command when called without any
// subcommands (init, run, version).
var RootCmd = cli.NewRootCommand("triebench",
	"Benchmark harness for the versioned Merkle trie",
	`triebench builds a Merkle trie from a seeded random workload,
looks up a second seeded stream of keys, optionally proving and
verifying every lookup, and reports how long each phase took.`)
