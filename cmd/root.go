package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/stephenmfriend/tally/config"
	"github.com/stephenmfriend/tally/store"
	"github.com/stephenmfriend/tally/tui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "tally - an interactive terminal to-do list",
	Long: `tally keeps a list of tasks in a JSON file in the working directory and
lets you create, edit, delete and progress them from a full-screen table.

Settings are read from .tally.yaml in the working directory when present.

Examples:
  # Start the interactive table
  tally

  # Print the tasks that are not done yet
  tally list --hide-completed`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyColorProfile()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// applyColorProfile drops to plain text when NO_COLOR is set.
func applyColorProfile() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// runInteractive starts the TUI over the configured task file.
func runInteractive() error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	model := tui.NewModel(tui.Options{
		Store:  openStore(cfg, logger),
		Config: cfg,
		Logger: logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if m, ok := final.(*tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// newLogger builds the diagnostics logger. The returned func closes the
// log file, if one was opened.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "tally",
		Level:           cfg.Level(),
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// openStore loads the task file. Load problems start an empty list.
func openStore(cfg config.Config, logger *log.Logger) *store.Store {
	s, err := store.Open(store.NewFile(cfg.DataFile))
	if err == nil {
		logger.Debug("loaded tasks", "path", cfg.DataFile, "count", s.Len())
		return s
	}

	var le *store.LoadError
	if errors.As(err, &le) && le.Kind == store.LoadMissing {
		logger.Debug("no task file yet", "path", le.Path)
	} else {
		logger.Warn("cannot load tasks, starting empty", "err", err)
	}
	return s
}
