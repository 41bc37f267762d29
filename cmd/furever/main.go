package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/furevercare/furever/cmd/furever/commands"
)

// version is stamped by the build.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("furever"),
		kong.Description("FurEver Care companion: pet products, adoptions and vets from your terminal."),
		kong.Vars{"version": version},
	)

	global, err := commands.NewGlobal(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, "furever:", err)
		os.Exit(1)
	}
	defer global.Close()

	if err := ctx.Run(global); err != nil {
		fmt.Fprintln(os.Stderr, "furever:", err)
		os.Exit(1)
	}
}
