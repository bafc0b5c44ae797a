package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/coniks-sys/merkletrie/application"
	"github.com/coniks-sys/merkletrie/application/bench"
	"github.com/coniks-sys/merkletrie/cli"
	"github.com/coniks-sys/merkletrie/crypto/hasher/sha2"
	"github.com/spf13/cobra"
)

var initCmd = cli.NewInitCommand("triebench", mkConfigOrExit)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".",
		"Location of directory for storing generated files")
	initCmd.Flags().String("hasher", sha2.SHA256Hasher,
		"Hash algorithm the trie is built with")
}

func mkConfigOrExit(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	file := path.Join(dir, "config.toml")

	logConfig := &application.LoggerConfig{
		Environment: "development",
		Path:        "triebench.log",
	}
	conf := bench.NewConfig(file, "toml", logConfig,
		cmd.Flag("hasher").Value.String())

	if err := conf.Save(); err != nil {
		fmt.Println("Couldn't save config. Error message: [" +
			err.Error() + "]")
		os.Exit(-1)
	}
}
