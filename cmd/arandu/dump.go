package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/arandu/internal/fileutil"
	"github.com/lox/arandu/rng"
)

// DumpCmd reproduces the classic demo: a block of raw outputs, an advance,
// then a second block
type DumpCmd struct {
	Seed  uint64 `default:"12345678910" help:"Seed (0 auto-seeds)"`
	Count int    `short:"n" default:"5" help:"Outputs per block"`
	Then  string `enum:"none,jump,long-jump" default:"long-jump" help:"Advance between the two blocks (none|jump|long-jump)"`
	Out   string `short:"o" type:"path" help:"Write to a file instead of stdout"`
}

func (c *DumpCmd) Run(globals *Globals) error {
	g := rng.New(c.Seed)
	if c.Out == "" {
		return writeDump(os.Stdout, g, c.Count, c.Then)
	}
	return fileutil.WriteAtomic(c.Out, 0644, func(w io.Writer) error {
		return writeDump(w, g, c.Count, c.Then)
	})
}

func writeDump(w io.Writer, g *rng.Generator, count int, then string) error {
	if _, err := fmt.Fprintf(w, "# seed %d\n", g.Seed()); err != nil {
		return err
	}
	if err := writeBlock(w, g, count); err != nil {
		return err
	}

	switch then {
	case "none":
		return nil
	case "jump":
		g.Jump()
	case "long-jump":
		g.LongJump()
	default:
		return fmt.Errorf("unknown advance: %s", then)
	}

	if _, err := fmt.Fprintf(w, "# after %s\n", then); err != nil {
		return err
	}
	return writeBlock(w, g, count)
}

func writeBlock(w io.Writer, g *rng.Generator, count int) error {
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(w, g.Uint64()); err != nil {
			return err
		}
	}
	return nil
}
