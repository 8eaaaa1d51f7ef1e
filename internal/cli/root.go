package cli

import (
	"os"
	"strings"

	"projectboard/internal/store"
	"projectboard/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Theme      string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "projectboard",
		Short:        "In-memory project board (TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  projectboard

  # Force a palette
  projectboard --theme dark

  # Print a seeded sample board as JSON (scripting/smoke checks)
  projectboard demo --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("PROJECTBOARD_THEME", "auto"), "Palette: light|dark|auto")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(app *App) error {
	// The board lives for the process lifetime; nothing is persisted.
	b := store.NewBoard()
	return tui.Run(b, tui.Options{Theme: app.Theme})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
