package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lox/arandu/internal/randutil"
	"github.com/lox/arandu/rng"
)

// SampleCmd prints draws from a chosen distribution
type SampleCmd struct {
	Dist   string  `arg:"" optional:"" enum:"u64,uniform,range,int,normal,normal-pair,perm" default:"uniform" help:"Distribution (u64|uniform|range|int|normal|normal-pair|perm)"`
	Seed   *uint64 `help:"Deterministic seed (omit to auto-seed)"`
	Count  int     `short:"n" default:"10" help:"Number of draws"`
	Min    float64 `default:"0" help:"Lower bound for range, mean for normal"`
	Max    float64 `default:"1" help:"Upper bound for range, stddev for normal"`
	Lo     uint64  `default:"0" help:"Lower bound for int"`
	Hi     uint64  `default:"100" help:"Upper bound (exclusive) for int"`
	Stream int     `default:"0" help:"Jump-ahead stream to draw from"`
}

func (c *SampleCmd) Run(globals *Globals) error {
	var seed uint64
	if c.Seed != nil {
		seed = *c.Seed
	}
	if c.Stream < 0 {
		return fmt.Errorf("stream cannot be negative")
	}

	g := rng.New(seed)
	for i := 0; i < c.Stream; i++ {
		g.Jump()
	}
	return writeSamples(os.Stdout, g, c)
}

func writeSamples(w io.Writer, g *rng.Generator, c *SampleCmd) error {
	if c.Dist == "perm" {
		// Same seed and stream as g, through math/rand's Perm
		perm := randutil.Stream(int64(g.Seed()), c.Stream).Perm(c.Count)
		for _, v := range perm {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}

	next, err := sampler(g, c)
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		if _, err := fmt.Fprintln(w, next()); err != nil {
			return err
		}
	}
	return nil
}

func sampler(g *rng.Generator, c *SampleCmd) (func() string, error) {
	formatFloat := func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	switch c.Dist {
	case "u64":
		return func() string { return strconv.FormatUint(g.Uint64(), 10) }, nil
	case "uniform":
		return func() string { return formatFloat(g.Float64()) }, nil
	case "range":
		return func() string { return formatFloat(g.Float64Range(c.Min, c.Max)) }, nil
	case "int":
		return func() string { return strconv.FormatUint(g.Uint64Range(c.Lo, c.Hi), 10) }, nil
	case "normal":
		return func() string { return formatFloat(g.NormalFloat64(c.Min, c.Max)) }, nil
	case "normal-pair":
		p := rng.NewNormalPair(g)
		return func() string { return formatFloat(c.Min + c.Max*p.Next()) }, nil
	}
	return nil, fmt.Errorf("unknown distribution: %s", c.Dist)
}
