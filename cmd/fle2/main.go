package main

import (
	"os"

	"github.com/zjkmxy/fle2/cmd"
)

func main() {
	if err := cmd.CmdFle2.Execute(); err != nil {
		os.Exit(1)
	}
}
