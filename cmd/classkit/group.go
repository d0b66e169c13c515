package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/classkit/internal/config"
	"github.com/san-kum/classkit/internal/export"
	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/rng"
	"github.com/san-kum/classkit/internal/roster"
	"github.com/san-kum/classkit/internal/tui"
	"github.com/san-kum/classkit/internal/viz"
)

var (
	groupSize  int
	groupCount int
	editGroups bool
)

func groupCommand() *cobra.Command {
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "split the class into random groups",
		RunE:  runGroup,
	}
	requireClass(groupCmd)
	groupCmd.Flags().IntVar(&groupSize, "size", 0, "students per group")
	groupCmd.Flags().IntVar(&groupCount, "count", 0, "number of groups")
	groupCmd.MarkFlagsMutuallyExclusive("size", "count")
	groupCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	groupCmd.Flags().StringVar(&outFile, "out", "", "export to file (.json, .csv, .xlsx)")
	groupCmd.Flags().StringVar(&themeName, "theme", "classic", "color theme")
	groupCmd.Flags().BoolVar(&editGroups, "edit", false, "move students between groups before exporting")
	return groupCmd
}

// groupMode picks the flag, then the config, then the default size.
func groupMode(cmd *cobra.Command) grouping.Mode {
	flags := cmd.Flags()
	switch {
	case flags.Changed("count"):
		return grouping.ByCount(groupCount)
	case flags.Changed("size"):
		return grouping.BySize(groupSize)
	case cli.cfg.Grouping.Count > 0:
		return grouping.ByCount(cli.cfg.Grouping.Count)
	case cli.cfg.Grouping.Size > 0:
		return grouping.BySize(cli.cfg.Grouping.Size)
	}
	return grouping.BySize(config.DefaultGroupSize)
}

func runGroup(cmd *cobra.Command, args []string) error {
	class, err := cli.loadClass(cmd.Context(), className, false)
	if err != nil {
		return err
	}
	mode := groupMode(cmd)
	groups, err := grouping.Make(class.Students, mode, rng.New(seed))
	if err != nil {
		return err
	}
	cli.logger.Debug("grouped", "mode", mode.String(), "groups", len(groups))

	theme := viz.GetTheme(themeName)
	if editGroups {
		final, err := tea.NewProgram(tui.NewGroupEditor(groups, theme), tea.WithContext(cmd.Context())).Run()
		if err != nil {
			return err
		}
		if e, ok := final.(interface{ Groups() []grouping.Group }); ok {
			groups = e.Groups()
		}
	}

	fmt.Println(viz.RenderGroups(groups, theme))
	if outFile != "" {
		if err := export.GroupsToFile(outFile, groups); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", outFile)
	}
	return nil
}

func pickCommand() *cobra.Command {
	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "pick a random student",
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := cli.loadClass(cmd.Context(), className, false)
			if err != nil {
				return err
			}
			s, err := roster.Pick(class.Students, rng.New(seed))
			if err != nil {
				return err
			}
			fmt.Println(s.Name)
			return nil
		},
	}
	requireClass(pickCmd)
	pickCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	return pickCmd
}
