package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/monopoly-go/internal/api/response"
	"github.com/mcoot/monopoly-go/internal/model"
	"github.com/mcoot/monopoly-go/internal/services/board"
)

// errInvalidMap makes validate exit non-zero once the report is printed
var errInvalidMap = errors.New("map is not valid")

func newMapCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map file commands",
	}

	cmd.AddCommand(newMapValidateCmd(rt))
	cmd.AddCommand(newMapShowCmd(rt))
	cmd.AddCommand(newMapNewCmd(rt))

	return cmd
}

// loadMapReport loads a map file and reports on it. Invalid maps are
// reported, not returned as errors.
func loadMapReport(boards *board.Service, cmd *cobra.Command, path string) (MapReport, error) {
	b, err := boards.LoadMap(cmd.Context(), path)
	report := MapReport{Path: path, MapValidation: response.MapValidation{Valid: true, Problems: []string{}}}

	var verr *board.ValidationError
	switch {
	case errors.As(err, &verr):
		report.Valid = false
		report.Problems = verr.Problems
	case err != nil:
		return report, err
	}
	report.Summary = board.Summary(b)
	return report, nil
}

func newMapValidateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a map file is playable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadMapReport(board.New(rt.logger), cmd, args[0])
			if err != nil {
				return err
			}

			report.Summary = nil
			rt.output(cmd).Print(report)
			if !report.Valid {
				return errInvalidMap
			}
			return nil
		},
	}
}

func newMapShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "List every square of a map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := loadMapReport(board.New(rt.logger), cmd, args[0])
			if err != nil {
				return err
			}
			rt.output(cmd).Print(report)
			return nil
		},
	}
}

func newMapNewCmd(rt *runtime) *cobra.Command {
	var size int
	var force bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Write a playable starter map",
		Long: `Write a playable starter map.

The new-game picker offers every file in the map directory, so a map can be
saved under any name. Use --map-dir or MONOPOLY_MAP_DIR to choose the directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			b, err := board.StarterMap(size)
			if err != nil {
				return err
			}
			if err := board.New(rt.logger).SaveMap(cmd.Context(), path, b); err != nil {
				return err
			}

			rt.output(cmd).PrintMessage(fmt.Sprintf("Wrote %d-square map to %s.", b.Size, path))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 20, fmt.Sprintf("Number of squares (at least %d)", model.MinBoardSize))
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
