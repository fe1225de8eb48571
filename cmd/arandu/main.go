package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" type:"path" default:"arandu.hcl" help:"HCL configuration file (missing file uses defaults)"`
	Debug   bool   `help:"Enable debug logging"`
	LogJSON bool   `help:"Output JSON logs instead of console format"`
	NoColor bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Dump    DumpCmd          `cmd:"" help:"Print raw 64-bit outputs before and after a jump"`
	Sample  SampleCmd        `cmd:"" help:"Print draws from one of the distributions"`
	Check   CheckCmd         `cmd:"" help:"Run the statistical quality battery over parallel streams"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("arandu"),
		kong.Description("Deterministic xoshiro256++ random numbers for simulations"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
