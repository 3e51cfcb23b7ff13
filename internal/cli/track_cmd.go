package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
)

func newTrackCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Inspect specialization tracks",
	}

	cmd.AddCommand(newTrackListCmd(a), newTrackShowCmd(a))
	return cmd
}

func newTrackListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracks, err := a.Catalog.ListTracks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrackList(tracks))
			return nil
		},
	}
}

func newTrackShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <track-id>",
		Short: "Show a track's requirement groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := a.Catalog.GetTrack(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrack(track))
			return nil
		},
	}
}
