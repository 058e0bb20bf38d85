package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"discograph/internal/catalog"
	"discograph/internal/config"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
	}

	var filter string
	var byTitle bool
	listCmd.PersistentFlags().StringVarP(&filter, "filter", "f", "", "Filter list entries")
	listCmd.PersistentFlags().BoolVar(&byTitle, "by-title", false, "Sort alphabetically instead of by date or id")

	listCmd.AddCommand(newListCDsCommand(ctx, &filter, &byTitle))
	listCmd.AddCommand(newListSongsCommand(ctx, &filter, &byTitle))
	listCmd.AddCommand(newListArtistsCommand(ctx, &filter, &byTitle))
	listCmd.AddCommand(newListConcertsCommand(ctx, &filter, &byTitle))

	return listCmd
}

// titleCollator orders titles the way a person browsing the catalog expects,
// rather than by raw code points.
func titleCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose)
}

func newListCDsCommand(ctx *commandContext, filter *string, byTitle *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "cds",
		Short: "List CDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				cds, err := store.ListCDs(cmd.Context(), *filter)
				if err != nil {
					return err
				}
				if *byTitle {
					coll := titleCollator()
					sort.SliceStable(cds, func(i, j int) bool {
						return coll.CompareString(cds[i].Title, cds[j].Title) < 0
					})
				}

				rows := make([][]string, 0, len(cds))
				for _, cd := range cds {
					order := ""
					if cd.OrderInSeries.Valid {
						order = strconv.FormatInt(cd.OrderInSeries.Int64, 10)
					}
					rows = append(rows, []string{
						strconv.FormatInt(cd.ID, 10), cd.Title, cd.SeriesName, order, cd.IssuedDate,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Series", "Order", "Issued"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newListSongsCommand(ctx *commandContext, filter *string, byTitle *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "songs",
		Short: "List songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				songs, err := store.ListSongs(cmd.Context(), *filter)
				if err != nil {
					return err
				}
				if *byTitle {
					coll := titleCollator()
					sort.SliceStable(songs, func(i, j int) bool {
						return coll.CompareString(songs[i].Title, songs[j].Title) < 0
					})
				}

				rows := make([][]string, 0, len(songs))
				for _, song := range songs {
					rows = append(rows, []string{strconv.FormatInt(song.ID, 10), song.Title})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title"},
					rows,
					[]columnAlignment{alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newListArtistsCommand(ctx *commandContext, filter *string, byTitle *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "artists",
		Short: "List artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				artists, err := store.ListArtists(cmd.Context(), *filter)
				if err != nil {
					return err
				}
				if *byTitle {
					coll := titleCollator()
					sort.SliceStable(artists, func(i, j int) bool {
						return coll.CompareString(artists[i].Name, artists[j].Name) < 0
					})
				}

				rows := make([][]string, 0, len(artists))
				for _, artist := range artists {
					rows = append(rows, []string{
						strconv.FormatInt(artist.ID, 10), artist.Name, artist.GroupName,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Group"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newListConcertsCommand(ctx *commandContext, filter *string, byTitle *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "concerts",
		Short: "List concerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				concerts, err := store.ListConcerts(cmd.Context(), *filter)
				if err != nil {
					return err
				}
				if *byTitle {
					coll := titleCollator()
					sort.SliceStable(concerts, func(i, j int) bool {
						return coll.CompareString(concerts[i].Title, concerts[j].Title) < 0
					})
				}

				rows := make([][]string, 0, len(concerts))
				for _, concert := range concerts {
					rows = append(rows, []string{
						strconv.FormatInt(concert.ID, 10), concert.Title, concert.HeldDate,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Held"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}
