package cli

import (
	"projectboard/internal/format"
	"projectboard/internal/model"
	"projectboard/internal/store"

	"github.com/spf13/cobra"
)

type demoOutput struct {
	Active        []model.Project `json:"active"`
	Finished      []model.Project `json:"finished"`
	Notifications int             `json:"notifications"`
}

func newDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed a sample board and print its partitions as JSON",
		Long: `Seed an in-memory board with sample projects, move one of them to the
finished list, and print the resulting status partitions. Useful as a
scriptable smoke check of the store without a terminal UI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := store.NewBoard()

			notifications := 0
			b.Subscribe(func([]model.Project) { notifications++ })

			b.AddProject("Build shed", "Weekend project", 3)
			fence := b.AddProject("Fix fence", "Replace the two rotten posts", 2)
			b.AddProject("Paint hallway", "Two coats, ceiling included", 1)
			b.MoveProject(fence.ID, model.StatusFinished)

			out := demoOutput{
				Active:        []model.Project{},
				Finished:      []model.Project{},
				Notifications: notifications,
			}
			for _, p := range b.Projects() {
				switch p.Status {
				case model.StatusFinished:
					out.Finished = append(out.Finished, p)
				default:
					out.Active = append(out.Active, p)
				}
			}

			return format.WriteJSON(cmd.OutOrStdout(), out, app.PrettyJSON)
		},
	}
}
