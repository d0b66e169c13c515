package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/classkit/internal/classstore"
	"github.com/san-kum/classkit/internal/config"
	"github.com/san-kum/classkit/internal/export"
	"github.com/san-kum/classkit/internal/rng"
	"github.com/san-kum/classkit/internal/seating"
	"github.com/san-kum/classkit/internal/tui"
	"github.com/san-kum/classkit/internal/viz"
)

var (
	rows        int
	cols        int
	blocked     []string
	preset      string
	maxAttempts int
	noSave      bool
)

func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns")
	cmd.Flags().StringSliceVar(&blocked, "block", nil, "blocked cells as row-col, e.g. 0-3")
	cmd.Flags().StringVar(&preset, "preset", "", "classroom layout preset")
	cmd.Flags().IntVar(&maxAttempts, "attempts", 0, "random draws for separating disruptive students")
}

func seatCommand() *cobra.Command {
	seatCmd := &cobra.Command{
		Use:   "seat",
		Short: "make a random seating plan",
		RunE:  runSeat,
	}
	requireClass(seatCmd)
	addLayoutFlags(seatCmd)
	seatCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	seatCmd.Flags().StringVar(&outFile, "out", "", "export to file (.json, .csv, .xlsx, .svg)")
	seatCmd.Flags().StringVar(&themeName, "theme", "classic", "color theme")
	seatCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the plan with the class")
	return seatCmd
}

func swapCommand() *cobra.Command {
	swapCmd := &cobra.Command{
		Use:   "swap [row-col] [row-col]",
		Short: "swap two seats in the saved plan",
		Args:  cobra.ExactArgs(2),
		RunE:  runSwap,
	}
	requireClass(swapCmd)
	swapCmd.Flags().StringVar(&themeName, "theme", "classic", "color theme")
	return swapCmd
}

func editCommand() *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "edit the seating plan interactively",
		RunE:  runEdit,
	}
	requireClass(editCmd)
	addLayoutFlags(editCmd)
	editCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reallocation (0 uses the clock)")
	editCmd.Flags().StringVar(&themeName, "theme", "classic", "color theme")
	return editCmd
}

// resolveLayout layers the layout sources: config, the class's saved
// layout, a preset, then explicit flags.
func resolveLayout(cmd *cobra.Command, class *classstore.SavedClass) (seating.Layout, error) {
	sc := cli.cfg.Seating
	base, err := parseBlocked(sc.Blocked)
	if err != nil {
		return seating.Layout{}, err
	}
	l, err := class.Layout(seating.Layout{Rows: sc.Rows, Cols: sc.Cols, Blocked: base})
	if err != nil {
		return seating.Layout{}, err
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return seating.Layout{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		pb, err := parseBlocked(p.Blocked)
		if err != nil {
			return seating.Layout{}, err
		}
		l = seating.Layout{Rows: p.Rows, Cols: p.Cols, Blocked: pb}
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		l.Rows = rows
	}
	if flags.Changed("cols") {
		l.Cols = cols
	}
	if flags.Changed("block") {
		fb, err := parseBlocked(blocked)
		if err != nil {
			return seating.Layout{}, err
		}
		l.Blocked = fb
	}
	if l.Rows < 1 || l.Cols < 1 || l.Rows > config.MaxGridSide || l.Cols > config.MaxGridSide {
		return seating.Layout{}, fmt.Errorf("%w: %dx%d (1-%d per side)", seating.ErrInvalidLayout, l.Rows, l.Cols, config.MaxGridSide)
	}
	return l, nil
}

func parseBlocked(keys []string) ([]seating.Coord, error) {
	out := make([]seating.Coord, 0, len(keys))
	for _, k := range keys {
		c, err := seating.ParseCoord(k)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func attempts() int {
	if maxAttempts > 0 {
		return maxAttempts
	}
	return cli.cfg.Seating.MaxAttempts
}

// logWarnings reports non-fatal allocation problems.
func logWarnings(res *seating.Result) {
	for _, w := range res.Warnings {
		var adj *seating.AdjacencyError
		if errors.As(w, &adj) {
			names := make([]string, len(res.Unseparated))
			for i, s := range res.Unseparated {
				names[i] = s.Name
			}
			cli.logger.Warn("could not keep disruptive students apart",
				"unplaced", adj.Unplaced, "attempts", adj.Attempts, "students", names)
			continue
		}
		cli.logger.Warn(w.Error())
	}
}

func runSeat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	class, err := cli.loadClass(ctx, className, false)
	if err != nil {
		return err
	}
	layout, err := resolveLayout(cmd, class)
	if err != nil {
		return err
	}

	res, err := seating.Allocate(class.Students, layout, rng.New(seed), seating.WithMaxAttempts(attempts()))
	if err != nil {
		return err
	}
	logWarnings(res)
	cli.logger.Debug("allocated", "students", len(class.Students), "rows", layout.Rows, "cols", layout.Cols, "attempts", res.Attempts)

	fmt.Println(viz.RenderGrid(res.Grid, viz.GetTheme(themeName)))
	fmt.Println(viz.Legend(viz.GetTheme(themeName)))

	if !noSave {
		st, err := cli.openStore(ctx)
		if err != nil {
			return err
		}
		if _, err := st.Save(ctx, classstore.SaveRequest{Name: class.Name, Students: class.Students, Grid: res.Grid}); err != nil {
			return err
		}
	}
	if outFile != "" {
		if err := export.GridToFile(outFile, res.Grid); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", outFile)
	}
	return nil
}

func runSwap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	class, err := cli.loadClass(ctx, className, false)
	if err != nil {
		return err
	}
	g, err := class.Seating()
	if err != nil {
		return err
	}
	a, err := seating.ParseCoord(args[0])
	if err != nil {
		return err
	}
	b, err := seating.ParseCoord(args[1])
	if err != nil {
		return err
	}
	if !seating.Swap(g, a, b) {
		return fmt.Errorf("cannot swap %s and %s: blocked or outside the %dx%d grid", a, b, g.Rows, g.Cols)
	}

	st, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	if _, err := st.Save(ctx, classstore.SaveRequest{Name: class.Name, Students: class.Students, Grid: g}); err != nil {
		return err
	}
	fmt.Println(viz.RenderGrid(g, viz.GetTheme(themeName)))
	if v := g.Violations(); len(v) > 0 {
		cli.logger.Warn("disruptive students now sit side by side", "pairs", len(v))
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	class, err := cli.loadClass(ctx, className, false)
	if err != nil {
		return err
	}
	layout, err := resolveLayout(cmd, class)
	if err != nil {
		return err
	}
	r := rng.New(seed)
	reallocate := func() (*seating.Result, error) {
		return seating.Allocate(class.Students, layout, r, seating.WithMaxAttempts(attempts()))
	}

	var grid *seating.Grid
	if class.HasSeating() {
		if grid, err = class.Seating(); err != nil {
			return err
		}
	} else {
		res, err := reallocate()
		if err != nil {
			return err
		}
		logWarnings(res)
		grid = res.Grid
	}

	st, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	save := func(g *seating.Grid) error {
		_, err := st.Save(ctx, classstore.SaveRequest{Name: class.Name, Students: class.Students, Grid: g})
		return err
	}

	editor := tui.NewSeatEditor(tui.SeatEditorOptions{
		Title:      class.Name,
		Grid:       grid,
		Theme:      viz.GetTheme(themeName),
		Reallocate: reallocate,
		Save:       save,
	})
	_, err = tea.NewProgram(editor, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
