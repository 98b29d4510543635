package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelhouse/internal/catalog"
	"reelhouse/internal/logging"
	"reelhouse/internal/session"
)

func newContentCommand(ctx *commandContext) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Manage catalog content (admin)",
	}

	contentCmd.AddCommand(newAddMovieCommand(ctx))
	contentCmd.AddCommand(newAddShowCommand(ctx))
	contentCmd.AddCommand(newRemoveContentCommand(ctx))

	return contentCmd
}

type sharedContentFlags struct {
	genre  string
	rating float64
}

func (f *sharedContentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.genre, "genre", "g", "", "Genre label")
	cmd.Flags().Float64VarP(&f.rating, "rating", "r", 0, "Rating (0-10)")
}

func newAddMovieCommand(ctx *commandContext) *cobra.Command {
	var shared sharedContentFlags
	var movie struct {
		duration int
		rent     float64
		purchase float64
	}

	cmd := &cobra.Command{
		Use:   "add-movie <title>",
		Short: "Add a movie to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := catalog.NewMovie(args[0], shared.genre, shared.rating, catalog.Movie{
				Duration:     movie.duration,
				RentCost:     catalog.Money(movie.rent),
				PurchaseCost: catalog.Money(movie.purchase),
			})
			return addContent(cmd, ctx, entry)
		},
	}

	shared.register(cmd)
	cmd.Flags().IntVar(&movie.duration, "duration", 0, "Running time in minutes")
	cmd.Flags().Float64Var(&movie.rent, "rent-cost", 0, "Rental price")
	cmd.Flags().Float64Var(&movie.purchase, "purchase-cost", 0, "Purchase price")
	return cmd
}

func newAddShowCommand(ctx *commandContext) *cobra.Command {
	var shared sharedContentFlags
	var show struct {
		seasons  int
		episodes int
		rent     float64
		purchase float64
	}

	cmd := &cobra.Command{
		Use:   "add-show <title>",
		Short: "Add a TV show to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := catalog.NewTVShow(args[0], shared.genre, shared.rating, catalog.TVShow{
				Seasons:               show.seasons,
				EpisodesPerSeason:     show.episodes,
				RentCostPerSeason:     catalog.Money(show.rent),
				PurchaseCostPerSeason: catalog.Money(show.purchase),
			})
			return addContent(cmd, ctx, entry)
		},
	}

	shared.register(cmd)
	cmd.Flags().IntVar(&show.seasons, "seasons", 1, "Number of seasons")
	cmd.Flags().IntVar(&show.episodes, "episodes", 0, "Episodes per season")
	cmd.Flags().Float64Var(&show.rent, "rent-cost", 0, "Rental price per season")
	cmd.Flags().Float64Var(&show.purchase, "purchase-cost", 0, "Purchase price per season")
	return cmd
}

func addContent(cmd *cobra.Command, ctx *commandContext, entry catalog.Entry) error {
	return ctx.asAdmin(cmd, true, func(sess *session.Session) error {
		if err := sess.Library().AddContent(entry); err != nil {
			return err
		}
		sess.Logger().Info("content added",
			logging.String(logging.FieldTitle, entry.Title),
			logging.String("kind", string(entry.Kind)),
		)
		if ctx.jsonOutput() {
			return writeJSON(cmd, newContentView(entry, false))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s added.\n", entry.Kind.Label())
		return nil
	})
}

func newRemoveContentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove content and every rental or purchase of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asAdmin(cmd, true, func(sess *session.Session) error {
				entry, dropped, err := sess.Library().RemoveContent(args[0])
				if err != nil {
					return err
				}
				sess.Logger().Info("content removed",
					logging.String(logging.FieldTitle, entry.Title),
					logging.Int("ledger_records_dropped", dropped),
				)
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]any{
						"removed":                entry.Title,
						"ledger_records_dropped": dropped,
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Content removed.")
				if dropped > 0 {
					fmt.Fprintf(out, "Dropped %d rental/purchase record(s) that referenced it.\n", dropped)
				}
				return nil
			})
		},
	}
}
