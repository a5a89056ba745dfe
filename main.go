package main

import "github.com/xll-gen/assetpack/cmd"

// main is the entry point of the assetpack CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
