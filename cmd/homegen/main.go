package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/homegen/cmd/homegen/commands"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("homegen"),
		kong.Description("Generate the home page of a package documentation site."),
		kong.Vars{"version": version},
		kong.Bind(cli),
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}))
}
