package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/classkit/internal/classstore"
	"github.com/san-kum/classkit/internal/export"
	"github.com/san-kum/classkit/internal/viz"
)

func classCommand() *cobra.Command {
	classCmd := &cobra.Command{
		Use:   "class",
		Short: "manage saved classes",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved classes",
		RunE:  listClasses,
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "show a class roster and seating plan",
		Args:  cobra.ExactArgs(1),
		RunE:  showClass,
	}
	showCmd.Flags().StringVar(&themeName, "theme", "classic", "color theme")

	deleteCmd := &cobra.Command{
		Use:   "delete [name|id]",
		Short: "delete a saved class",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteClass,
	}

	exportCmd := &cobra.Command{
		Use:   "export [name]",
		Short: "export the saved seating plan",
		Args:  cobra.ExactArgs(1),
		RunE:  exportClass,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default klasindeling-<class>.csv)")

	classCmd.AddCommand(listCmd, showCmd, deleteCmd, exportCmd)
	return classCmd
}

func listClasses(cmd *cobra.Command, args []string) error {
	st, err := cli.openStore(cmd.Context())
	if err != nil {
		return err
	}
	classes, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		fmt.Println("no saved classes")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTUDENTS\tSEATING\tSAVED")
	for _, c := range classes {
		seatingInfo := "-"
		if c.HasSeating() {
			seatingInfo = fmt.Sprintf("%dx%d", c.Rows, c.Cols)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			c.ID,
			c.Name,
			len(c.Students),
			seatingInfo,
			time.UnixMilli(c.Timestamp).Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func showClass(cmd *cobra.Command, args []string) error {
	class, err := cli.loadClass(cmd.Context(), args[0], false)
	if err != nil {
		return err
	}
	fmt.Printf("class: %s\n", class.Name)
	fmt.Printf("id: %s\n", class.ID)
	fmt.Printf("students: %d\n\n", len(class.Students))
	if len(class.Students) > 0 {
		if err := printStudents(class.Students); err != nil {
			return err
		}
	}
	if class.HasSeating() {
		g, err := class.Seating()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(viz.RenderGrid(g, viz.GetTheme(themeName)))
	}
	return nil
}

func deleteClass(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	err = st.DeleteByName(ctx, args[0])
	if errors.Is(err, classstore.ErrNotFound) {
		err = st.Delete(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("class %q: %w", args[0], err)
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func exportClass(cmd *cobra.Command, args []string) error {
	class, err := cli.loadClass(cmd.Context(), args[0], false)
	if err != nil {
		return err
	}
	g, err := class.Seating()
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = export.Filename(class.Name, export.KindSeating, string(export.CSV))
	}
	if err := export.GridToFile(path, g); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}
