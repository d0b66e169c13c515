package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/classkit/internal/classstore"
	"github.com/san-kum/classkit/internal/config"
	"github.com/san-kum/classkit/internal/seating"
	"github.com/san-kum/classkit/internal/sweep"
)

var (
	sweepStudents int
	sweepMax      int
	sweepTrials   int
	sweepWorkers  int
)

func sweepCommand() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure how often disruptive students cannot be separated",
		RunE:  runSweep,
	}
	addLayoutFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepStudents, "students", 0, "class size (0 fills every seat)")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 0, "largest disruptive count (0 means class size)")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 200, "allocations per disruptive count")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "parallel workers (0 uses all CPUs)")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (0 uses the clock)")
	return sweepCmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	layout, err := resolveLayout(cmd, &classstore.SavedClass{})
	if err != nil {
		return err
	}

	spec := sweep.Spec{
		Layout:        layout,
		Students:      sweepStudents,
		MaxDisruptive: sweepMax,
		Trials:        sweepTrials,
		Seed:          seed,
		MaxAttempts:   attempts(),
		Workers:       sweepWorkers,
	}
	cli.logger.Info("sweeping", "rows", layout.Rows, "cols", layout.Cols, "seats", layout.Capacity(), "trials", sweepTrials)
	res, err := sweep.Run(cmd.Context(), spec)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DISRUPTIVE\tWARNINGS\tRATE\tATTEMPTS\tUNSEPARATED")
	for _, p := range res.Points {
		fmt.Fprintf(w, "%d\t%d/%d\t%.1f%%\t%.1f\t%.2f\n",
			p.Disruptive, p.Warnings, p.Trials, p.WarningRate()*100, p.MeanAttempts, p.MeanUnseparated)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	rates := res.Rates()
	if len(rates) < 2 {
		return nil
	}
	for i := range rates {
		rates[i] *= 100
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(rates,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Caption(fmt.Sprintf("warning rate %% by disruptive count (%dx%d, %d attempts)",
			layout.Rows, layout.Cols, res.Spec.MaxAttempts)),
	))
	return nil
}

func presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list classroom layout presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROWS\tCOLS\tSEATS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				b, err := parseBlocked(p.Blocked)
				if err != nil {
					return err
				}
				l := seating.Layout{Rows: p.Rows, Cols: p.Cols, Blocked: b}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, p.Rows, p.Cols, l.Capacity())
			}
			return w.Flush()
		},
	}
}

func configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect or write the configuration",
	}
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Write(os.Stdout, cli.cfg)
		},
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
