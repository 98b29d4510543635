package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelhouse/internal/catalog"
	"reelhouse/internal/library"
	"reelhouse/internal/session"
	"reelhouse/internal/textutil"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var kind string
	var genre string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List movies or TV shows, optionally by genre",
		RunE: func(cmd *cobra.Command, args []string) error {
			var pred catalog.Predicate
			if strings.TrimSpace(kind) != "" {
				k, err := catalog.ParseKind(kind)
				if err != nil {
					return fmt.Errorf("%w: %v", catalog.ErrInvalidEntry, err)
				}
				pred = catalog.OfKind(k)
			}
			pred = catalog.And(pred, catalog.InGenre(genre))
			return ctx.withSession(cmd, false, func(sess *session.Session) error {
				return writeEntries(cmd, ctx, sess.Library(), pred, true, "No content found.")
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "movie or tv")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Exact genre to match (blank for all)")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find content whose title or genre contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, false, func(sess *session.Session) error {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				pred := catalog.Matching(args[0])
				if fold || cfg.Search.CaseInsensitive {
					pred = catalog.MatchingFold(args[0])
				}
				return writeEntries(cmd, ctx, sess.Library(), pred, false, "No matches.")
			})
		},
	}

	cmd.Flags().BoolVarP(&fold, "fold", "i", false, "Ignore case when matching")
	return cmd
}

func writeEntries(cmd *cobra.Command, ctx *commandContext, lib *library.Library, pred catalog.Predicate, numbered bool, empty string) error {
	if ctx.jsonOutput() {
		views := []contentView{}
		for entry := range lib.Catalog().Filter(pred) {
			views = append(views, newContentView(entry, lib.IsRented(entry.Title)))
		}
		return writeJSON(cmd, views)
	}

	out := listing{
		headers: []string{"#", "Title", "Kind", "Genre", "Rating", "Details", "Rent", "Buy", "Rented"},
		aligns:  []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft},
	}
	i := 0
	for entry := range lib.Catalog().Filter(pred) {
		i++
		plain := entry.Describe()
		if numbered {
			plain = fmt.Sprintf("%d. %s", i, plain)
		}
		out.add(plain,
			fmt.Sprint(i),
			entry.Title,
			entry.Kind.Label(),
			textutil.DisplayLabel(entry.Genre),
			catalog.FormatRating(entry.Rating),
			entry.Details(),
			"$"+entry.RentCost().String(),
			"$"+entry.PurchaseCost().String(),
			yesNo(lib.IsRented(entry.Title)),
		)
	}
	out.write(cmd, empty)
	return nil
}
