package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"discograph/internal/catalog"
	"discograph/internal/config"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show one catalog entry with its related rows",
	}

	showCmd.AddCommand(newShowCDCommand(ctx))
	showCmd.AddCommand(newShowConcertCommand(ctx))

	return showCmd
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func artistNames(artists []catalog.Artist) string {
	names := make([]string, len(artists))
	for i, artist := range artists {
		names[i] = artist.Name
	}
	return strings.Join(names, ", ")
}

func newShowCDCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cd <id>",
		Short: "Show a CD and its track listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				detail, err := store.CDDetail(cmd.Context(), id)
				if err != nil {
					return err
				}
				if detail == nil {
					return fmt.Errorf("cd %d not found", id)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "CD %d: %s\n", detail.CD.ID, detail.CD.Title)
				if detail.CD.SeriesName != "" {
					order := ""
					if detail.CD.OrderInSeries.Valid {
						order = fmt.Sprintf(" #%d", detail.CD.OrderInSeries.Int64)
					}
					fmt.Fprintf(out, "Series: %s%s\n", detail.CD.SeriesName, order)
				}
				if detail.CD.IssuedDate != "" {
					fmt.Fprintf(out, "Issued: %s\n", detail.CD.IssuedDate)
				}

				rows := make([][]string, 0, len(detail.Tracks))
				for _, track := range detail.Tracks {
					rows = append(rows, []string{
						strconv.FormatInt(track.TrackNumber, 10),
						track.SongTitle,
						artistNames(track.Artists),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Song", "Artists"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newShowConcertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "concert <id>",
		Short: "Show a concert and its setlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				detail, err := store.ConcertDetail(cmd.Context(), id)
				if err != nil {
					return err
				}
				if detail == nil {
					return fmt.Errorf("concert %d not found", id)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Concert %d: %s\n", detail.Concert.ID, detail.Concert.Title)
				if detail.Concert.HeldDate != "" {
					fmt.Fprintf(out, "Held: %s\n", detail.Concert.HeldDate)
				}

				rows := make([][]string, 0, len(detail.Setlist))
				for _, entry := range detail.Setlist {
					rows = append(rows, []string{
						strconv.FormatInt(entry.NumberOfOrder, 10),
						entry.SongTitle,
						artistNames(entry.Artists),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Song", "Artists"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
