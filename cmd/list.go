package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/stephenmfriend/tally/config"
	"github.com/stephenmfriend/tally/selection"
	"github.com/stephenmfriend/tally/task"
	"github.com/stephenmfriend/tally/ui"
)

const listDescriptionWidth = 42

var listHideCompleted bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the tasks as a table",
	Long: `Print the tasks from the task file as a table and exit.

Examples:
  # Every task
  tally list

  # Only tasks that are not done
  tally list --hide-completed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		hide := cfg.HideCompleted
		if cmd.Flags().Changed("hide-completed") {
			hide = listHideCompleted
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "tally",
			Level:  cfg.Level(),
		})
		s := openStore(cfg, logger)
		return writeList(cmd.OutOrStdout(), s.Tasks(), hide)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listHideCompleted, "hide-completed", false, "omit tasks that are done")
	rootCmd.AddCommand(listCmd)
}

// writeList renders tasks as a bordered table.
func writeList(w io.Writer, tasks []task.Task, hideCompleted bool) error {
	view := selection.Compute(tasks, hideCompleted)
	if view.Len() == 0 {
		_, err := fmt.Fprintln(w, ui.EmptyStyle.Render("No tasks"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(ui.HelpStyle).
		Headers("#", "Name", "Description", "Progress", "Created").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Bold(true)
			case col == 3 && row < view.Len():
				return s.Inherit(ui.ProgressStyle(view[row].Task.Progress))
			}
			return s
		})

	for i, r := range view {
		t.Row(
			strconv.Itoa(i+1),
			r.Task.Name,
			ansi.Truncate(r.Task.Description, listDescriptionWidth, "…"),
			r.Task.Progress.Label(),
			r.Task.Created,
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
