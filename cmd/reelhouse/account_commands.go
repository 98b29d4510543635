package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelhouse/internal/ledger"
	"reelhouse/internal/logging"
	"reelhouse/internal/session"
)

func newSignupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, true, func(sess *session.Session) error {
				account, err := sess.Library().Signup(args[0])
				if err != nil {
					return err
				}
				sess.Logger().Info("account created", logging.String(logging.FieldUsername, account.Username()))
				if ctx.jsonOutput() {
					return writeJSON(cmd, userView{Username: account.Username()})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %s created.\n", account.Username())
				return nil
			})
		},
	}
}

func seasonSuffix(season int) string {
	if season == 0 {
		return ""
	}
	return " season " + strconv.Itoa(season)
}

func newRentCommand(ctx *commandContext) *cobra.Command {
	var season int

	cmd := &cobra.Command{
		Use:   "rent <title>",
		Short: "Rent a movie or one season of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asUser(cmd, true, func(sess *session.Session, username string) error {
				rental, err := sess.Library().Rent(username, args[0], season)
				if err != nil {
					return err
				}
				sess.Logger().Info("content rented",
					logging.String(logging.FieldUsername, username),
					logging.String(logging.FieldTitle, rental.Title),
					logging.Int("season", rental.Season),
				)
				if ctx.jsonOutput() {
					account, err := sess.Library().Accounts().Get(username)
					if err != nil {
						return err
					}
					return writeJSON(cmd, newRentalView(len(account.Rentals())-1, rental))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rented %s%s (due %s)\n", rental.Title, seasonSuffix(rental.Season), rental.DueDate)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&season, "season", "s", 0, "Season number for TV shows")
	return cmd
}

func newReturnCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "return <n>",
		Short: "Return the n-th rental as listed by `rentals`",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", ledger.ErrIndexOutOfRange, args[0])
			}
			return ctx.asUser(cmd, true, func(sess *session.Session, username string) error {
				rental, err := sess.Library().Return(username, n-1)
				if err != nil {
					return err
				}
				sess.Logger().Info("content returned",
					logging.String(logging.FieldUsername, username),
					logging.String(logging.FieldTitle, rental.Title),
				)
				if ctx.jsonOutput() {
					return writeJSON(cmd, newRentalView(n-1, rental))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Returned %s%s.\n", rental.Title, seasonSuffix(rental.Season))
				return nil
			})
		},
	}
}

func newPurchaseCommand(ctx *commandContext) *cobra.Command {
	var season int

	cmd := &cobra.Command{
		Use:   "purchase <title>",
		Short: "Buy a movie or one season of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asUser(cmd, true, func(sess *session.Session, username string) error {
				price, err := sess.Library().Purchase(username, args[0], season)
				if err != nil {
					return err
				}
				sess.Logger().Info("content purchased",
					logging.String(logging.FieldUsername, username),
					logging.String(logging.FieldTitle, args[0]),
					logging.Int("season", season),
				)
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]any{"title": args[0], "season": season, "price": float64(price)})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Purchased %s%s for $%s\n", args[0], seasonSuffix(season), price)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&season, "season", "s", 0, "Season number for TV shows")
	return cmd
}

func newRentalsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rentals",
		Short: "List your active rentals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asUser(cmd, false, func(sess *session.Session, username string) error {
				account, err := sess.Library().Accounts().Get(username)
				if err != nil {
					return err
				}
				rentals := account.Rentals()
				if ctx.jsonOutput() {
					views := make([]rentalView, 0, len(rentals))
					for i, rental := range rentals {
						views = append(views, newRentalView(i, rental))
					}
					return writeJSON(cmd, views)
				}
				out := listing{
					headers: []string{"#", "Title", "Season", "Rented", "Due"},
					aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
				}
				for i, rental := range rentals {
					out.add(
						fmt.Sprintf("%d. %s%s (rented %s, due %s)", i+1, rental.Title, seasonSuffix(rental.Season), rental.RentDate, rental.DueDate),
						strconv.Itoa(i+1), rental.Title, strconv.Itoa(rental.Season), rental.RentDate, rental.DueDate,
					)
				}
				out.write(cmd, "No active rentals.")
				return nil
			})
		},
	}
}

func newPurchasesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "purchases",
		Short: "List your purchases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asUser(cmd, false, func(sess *session.Session, username string) error {
				account, err := sess.Library().Accounts().Get(username)
				if err != nil {
					return err
				}
				purchases := account.Purchases()
				if ctx.jsonOutput() {
					views := make([]purchaseView, 0, len(purchases))
					for i, purchase := range purchases {
						views = append(views, purchaseView{Index: i + 1, Title: purchase.Title, Season: purchase.Season})
					}
					return writeJSON(cmd, views)
				}
				out := listing{
					headers: []string{"#", "Title", "Season"},
					aligns:  []columnAlignment{alignRight, alignLeft, alignRight},
				}
				for i, purchase := range purchases {
					out.add(
						fmt.Sprintf("%d. %s%s", i+1, purchase.Title, seasonSuffix(purchase.Season)),
						strconv.Itoa(i+1), purchase.Title, strconv.Itoa(purchase.Season),
					)
				}
				out.write(cmd, "No purchases.")
				return nil
			})
		},
	}
}

func newChargesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "charges [username]",
		Short: "Show total rental charges (yours, or any user's with --admin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := func(sess *session.Session, username string, label string) error {
				total, err := sess.Library().Charges(username)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, chargesView{Username: username, Total: float64(total), Display: total.String()})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: $%s\n", label, total)
				return nil
			}
			if len(args) == 1 {
				return ctx.asAdmin(cmd, false, func(sess *session.Session) error {
					return report(sess, args[0], "Charges for "+args[0])
				})
			}
			return ctx.asUser(cmd, false, func(sess *session.Session, username string) error {
				return report(sess, username, "Total charges due")
			})
		},
	}
}

func newUsersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List user accounts (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asAdmin(cmd, false, func(sess *session.Session) error {
				lib := sess.Library()
				accounts := lib.Accounts().All()
				if ctx.jsonOutput() {
					views := make([]userView, 0, len(accounts))
					for _, account := range accounts {
						views = append(views, userView{
							Username:  account.Username(),
							Rentals:   len(account.Rentals()),
							Purchases: len(account.Purchases()),
						})
					}
					return writeJSON(cmd, views)
				}
				out := listing{
					headers: []string{"User", "Rentals", "Purchases", "Charges"},
					aligns:  []columnAlignment{alignLeft, alignRight, alignRight, alignRight},
				}
				for _, account := range accounts {
					charges := account.TotalCharges(lib.Catalog())
					out.add(
						fmt.Sprintf("%s (rentals: %d, purchases: %d, charges: $%s)", account.Username(), len(account.Rentals()), len(account.Purchases()), charges),
						account.Username(),
						strconv.Itoa(len(account.Rentals())),
						strconv.Itoa(len(account.Purchases())),
						"$"+charges.String(),
					)
				}
				out.write(cmd, "No users.")
				return nil
			})
		},
	}
}
