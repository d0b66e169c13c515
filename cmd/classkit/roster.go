package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/classkit/internal/classstore"
	"github.com/san-kum/classkit/internal/roster"
)

var (
	gender     string
	disruptive bool
	frontRow   bool
	newName    string
)

func rosterCommand() *cobra.Command {
	rosterCmd := &cobra.Command{
		Use:   "roster",
		Short: "edit the student list of a class",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "add a student",
		Args:  cobra.ExactArgs(1),
		RunE:  rosterAdd,
	}
	addCmd.Flags().StringVar(&gender, "gender", "m", "gender: m or v")
	addCmd.Flags().BoolVar(&disruptive, "disruptive", false, "keep away from other disruptive students")
	addCmd.Flags().BoolVar(&frontRow, "front", false, "seat in the front row")

	pasteCmd := &cobra.Command{
		Use:   "paste [file]",
		Short: "add one student per line from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  rosterPaste,
	}

	importCmd := &cobra.Command{
		Use:   "import [file.xlsx]",
		Short: "import students from a spreadsheet (name, gender, disruptive, front row)",
		Args:  cobra.ExactArgs(1),
		RunE:  rosterImport,
	}

	editCmd := &cobra.Command{
		Use:   "edit [id|name]",
		Short: "change a student",
		Args:  cobra.ExactArgs(1),
		RunE:  rosterEdit,
	}
	editCmd.Flags().StringVar(&newName, "name", "", "new name")
	editCmd.Flags().StringVar(&gender, "gender", "", "gender: m or v")
	editCmd.Flags().BoolVar(&disruptive, "disruptive", false, "disruptive flag")
	editCmd.Flags().BoolVar(&frontRow, "front", false, "front-row flag")

	removeCmd := &cobra.Command{
		Use:   "remove [id|name]",
		Short: "remove a student",
		Args:  cobra.ExactArgs(1),
		RunE:  rosterRemove,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list students",
		RunE:  rosterList,
	}

	for _, c := range []*cobra.Command{addCmd, pasteCmd, importCmd, editCmd, removeCmd, listCmd} {
		requireClass(c)
		rosterCmd.AddCommand(c)
	}
	return rosterCmd
}

// withRoster loads the class roster, applies fn and saves the result.
// The saved seating plan is kept.
func withRoster(cmd *cobra.Command, fn func(r *roster.Roster) error) error {
	ctx := cmd.Context()
	class, err := cli.loadClass(ctx, className, true)
	if err != nil {
		return err
	}
	r := roster.New(class.Students)
	if err := fn(r); err != nil {
		return err
	}
	st, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	_, err = st.Save(ctx, classstore.SaveRequest{Name: className, Students: r.Students()})
	return err
}

func rosterAdd(cmd *cobra.Command, args []string) error {
	return withRoster(cmd, func(r *roster.Roster) error {
		s, err := r.Add(args[0], roster.ParseGender(gender), disruptive, frontRow)
		if err != nil {
			return err
		}
		fmt.Printf("added %s (id %d)\n", s.Name, s.ID)
		return nil
	})
}

func rosterPaste(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	text, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	return withRoster(cmd, func(r *roster.Roster) error {
		added := r.Paste(string(text))
		fmt.Printf("added %d students\n", len(added))
		return nil
	})
}

func rosterImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	return withRoster(cmd, func(r *roster.Roster) error {
		added, err := r.ImportXLSX(f)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d students from %s\n", len(added), args[0])
		return nil
	})
}

func rosterEdit(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	return withRoster(cmd, func(r *roster.Roster) error {
		target, err := resolveStudent(r, args[0])
		if err != nil {
			return err
		}
		s, err := r.Edit(target.ID, func(s *roster.Student) {
			if flags.Changed("name") {
				s.Name = newName
			}
			if flags.Changed("gender") {
				s.Gender = roster.ParseGender(gender)
			}
			if flags.Changed("disruptive") {
				s.Disruptive = disruptive
			}
			if flags.Changed("front") {
				s.FrontRow = frontRow
			}
		})
		if err != nil {
			return err
		}
		fmt.Printf("updated %s (id %d)\n", s.Name, s.ID)
		return nil
	})
}

func rosterRemove(cmd *cobra.Command, args []string) error {
	return withRoster(cmd, func(r *roster.Roster) error {
		target, err := resolveStudent(r, args[0])
		if err != nil {
			return err
		}
		if err := r.Remove(target.ID); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", target.Name)
		return nil
	})
}

func rosterList(cmd *cobra.Command, args []string) error {
	class, err := cli.loadClass(cmd.Context(), className, false)
	if err != nil {
		return err
	}
	if len(class.Students) == 0 {
		fmt.Println("no students")
		return nil
	}
	return printStudents(class.Students)
}

func printStudents(students []roster.Student) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGENDER\tDISRUPTIVE\tFRONT")
	for _, s := range students {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Gender, yesNo(s.Disruptive), yesNo(s.FrontRow))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// resolveStudent accepts a numeric id or an exact name.
func resolveStudent(r *roster.Roster, arg string) (roster.Student, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if s, ok := r.Find(id); ok {
			return s, nil
		}
	}
	if s, ok := r.FindByName(arg); ok {
		return s, nil
	}
	return roster.Student{}, fmt.Errorf("%w: %s", roster.ErrNotFound, arg)
}
