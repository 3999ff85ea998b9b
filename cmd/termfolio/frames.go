package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tinytelemetry/termfolio/internal/profile"
	"github.com/tinytelemetry/termfolio/internal/typewriter"
)

func newFramesCmd(c *cli) *cobra.Command {
	var (
		ticks  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print the typewriter timeline without a clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := profile.Load(c.cfg.Profile)
			if err != nil {
				return err
			}
			if ticks <= 0 {
				ticks = typewriter.CycleTicks(p.Segments)
			}
			ticks = min(ticks, typewriter.MaxTicks)
			steps := typewriter.Simulate(p.Segments, c.cfg.typewriterConfig(), ticks)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(steps)
			}
			return writeSteps(cmd.OutOrStdout(), steps)
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 0, "number of ticks, at most 1000 (default one full cycle)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func writeSteps(w io.Writer, steps []typewriter.Step) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TICK\tAT\tSEGMENT\tMODE\tTEXT\tNEXT")
	for _, s := range steps {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%q\t%s\n", s.Tick, s.At, s.State.Index, s.State.Mode, s.Text, s.Delay)
	}
	return tw.Flush()
}
