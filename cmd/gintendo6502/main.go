// Command gintendo6502 loads an iNES ROM image, wires its PRG data
// into a flat 64 KiB address space, and runs the 6502 instruction
// interpreter against it until it halts, hits a step budget, or is
// cancelled.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/bdwalton/gintendo/cpu"
	"github.com/bdwalton/gintendo/memory"
	"github.com/bdwalton/gintendo/rom"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "gintendo6502",
		Usage:   "Interpret the 6502 program embedded in a NES ROM image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print one line per executed instruction to stderr",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "strict-opcodes",
				Usage: "fail on an unmapped opcode byte instead of treating it as NOP",
			},
			&cli.Uint64Flag{
				Name:  "max-steps",
				Usage: "stop after this many instructions (0 means unbounded)",
			},
		},
		ArgsUsage: "<rom-file>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("gintendo6502: %v", err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one ROM file argument is required", 2)
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading ROM: %v", err), 1)
	}

	r, err := rom.Load(data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading ROM: %v", err), 1)
	}

	mem := memory.New()
	mem.LoadROM(r)

	core := cpu.New(mem)
	core.StrictOpcodes = c.Bool("strict-opcodes")
	if c.Bool("trace") {
		core.Trace = func(line string) { fmt.Fprintln(os.Stderr, line) }
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := core.Run(ctx, c.Uint64("max-steps")); err != nil {
		return cli.Exit(fmt.Sprintf("run halted: %v", err), 1)
	}

	return nil
}
