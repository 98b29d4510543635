package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"reelhouse/internal/catalog"
	"reelhouse/internal/ledger"
)

// Export replaces the snapshot contents with cat and accounts.
func (s *Store) Export(ctx context.Context, cat *catalog.Catalog, accounts *ledger.Accounts) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"rentals", "purchases", "accounts", "content"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for pos, entry := range cat.All() {
		if err := insertEntry(ctx, tx, pos, entry); err != nil {
			return err
		}
	}

	for accountPos, account := range accounts.All() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO accounts (position, username) VALUES (?, ?)`, accountPos, account.Username()); err != nil {
			return fmt.Errorf("insert account %q: %w", account.Username(), err)
		}
		for pos, rental := range account.Rentals() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO rentals (account_position, position, title, season, rent_date, due_date) VALUES (?, ?, ?, ?, ?, ?)`,
				accountPos, pos, rental.Title, rental.Season, rental.RentDate, rental.DueDate,
			); err != nil {
				return fmt.Errorf("insert rental %q for %q: %w", rental.Title, account.Username(), err)
			}
		}
		for pos, purchase := range account.Purchases() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO purchases (account_position, position, title, season) VALUES (?, ?, ?, ?)`,
				accountPos, pos, purchase.Title, purchase.Season,
			); err != nil {
				return fmt.Errorf("insert purchase %q for %q: %w", purchase.Title, account.Username(), err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (key, value) VALUES ('exported_at', ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record export time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, pos int, entry catalog.Entry) error {
	var duration, seasons, episodes int
	switch entry.Kind {
	case catalog.KindMovie:
		duration = entry.Movie.Duration
	case catalog.KindTVShow:
		seasons = entry.Show.Seasons
		episodes = entry.Show.EpisodesPerSeason
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO content (
            position, title, kind, genre, rating, duration, seasons,
            episodes_per_season, rent_cost, purchase_cost
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pos, entry.Title, string(entry.Kind), entry.Genre, entry.Rating, duration, seasons,
		episodes, float64(entry.RentCost()), float64(entry.PurchaseCost()),
	)
	if err != nil {
		return fmt.Errorf("insert content %q: %w", entry.Title, err)
	}
	return nil
}
