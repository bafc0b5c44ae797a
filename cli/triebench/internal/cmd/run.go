package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/coniks-sys/merkletrie/application"
	"github.com/coniks-sys/merkletrie/application/bench"
	"github.com/coniks-sys/merkletrie/cli"
	"github.com/spf13/cobra"
)

// maxRenderDepth bounds the trees printed by --render;
// row i of the layout has 2^i slots.
const maxRenderDepth = 8

var runCmd = cli.NewRunCommand("triebench", run)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "config.toml", "Path to benchmark configuration file")
	runCmd.Flags().BoolP("render", "r", false, "Print the shape of the trie if it is small enough")
}

func run(cmd *cobra.Command, args []string) {
	confPath := cmd.Flag("config").Value.String()
	render, _ := strconv.ParseBool(cmd.Flag("render").Value.String())
	// ignore the error here since it is handled by the flag parser.

	conf := &bench.Config{}
	if err := conf.Load(confPath, "toml"); err != nil {
		log.Fatal(err)
	}
	logger := application.NewLogger(conf.Logger)
	defer logger.Sync()

	report, err := bench.Run(conf, logger)
	if err != nil {
		logger.Fatal("benchmark failed", "error", err)
	}
	if err := report.Print(os.Stdout); err != nil {
		logger.Error(err.Error())
	}

	if !render {
		return
	}
	if report.Depth > maxRenderDepth {
		logger.Warn("Trie too deep to render", "depth", report.Depth, "max", maxRenderDepth)
		return
	}
	fmt.Println()
	if err := report.Tree.Render(os.Stdout); err != nil {
		logger.Error(err.Error())
	}
}
