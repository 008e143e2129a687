package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/monopoly-go/internal/api/response"
)

func newSavesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Saved game commands",
	}

	cmd.AddCommand(newSavesListCmd(rt))
	cmd.AddCommand(newSavesShowCmd(rt))
	cmd.AddCommand(newSavesDeleteCmd(rt))

	return cmd
}

func newSavesListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved games, oldest round first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.App()
			if err != nil {
				return err
			}
			saves, err := app.Storage.ListSaves(cmd.Context())
			if err != nil {
				return err
			}
			if saves == nil {
				saves = []string{}
			}
			rt.output(cmd).Print(response.SaveList{Saves: saves})
			return nil
		},
	}
}

func newSavesShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved game and its standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.App()
			if err != nil {
				return err
			}
			state, err := app.SessionService.LoadGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rt.output(cmd).Print(SaveReport{
				Save:      response.SaveFromModel(args[0], state),
				Standings: app.ScoringService.Standings(state),
			})
			return nil
		},
	}
}

func newSavesDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.App()
			if err != nil {
				return err
			}
			if _, err := app.Storage.LoadGame(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := app.Storage.DeleteSave(cmd.Context(), args[0]); err != nil {
				return err
			}
			rt.output(cmd).PrintMessage(fmt.Sprintf("Deleted %s.", args[0]))
			return nil
		},
	}
}
