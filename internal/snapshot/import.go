package snapshot

import (
	"context"
	"fmt"

	"reelhouse/internal/catalog"
	"reelhouse/internal/ledger"
)

// Import rebuilds the catalog and accounts stored in the snapshot.
func (s *Store) Import(ctx context.Context) (*catalog.Catalog, *ledger.Accounts, error) {
	cat, err := s.importCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := s.importAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := s.importRentals(ctx, accounts); err != nil {
		return nil, nil, err
	}
	if err := s.importPurchases(ctx, accounts); err != nil {
		return nil, nil, err
	}
	return cat, accounts, nil
}

func (s *Store) importCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, kind, genre, rating, duration, seasons, episodes_per_season, rent_cost, purchase_cost
         FROM content ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	cat := catalog.New()
	for rows.Next() {
		var (
			title, kind, genre          string
			rating, rentCost, buyCost   float64
			duration, seasons, episodes int
		)
		if err := rows.Scan(&title, &kind, &genre, &rating, &duration, &seasons, &episodes, &rentCost, &buyCost); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		var entry catalog.Entry
		switch catalog.Kind(kind) {
		case catalog.KindTVShow:
			entry = catalog.NewTVShow(title, genre, rating, catalog.TVShow{
				Seasons:               seasons,
				EpisodesPerSeason:     episodes,
				RentCostPerSeason:     catalog.Money(rentCost),
				PurchaseCostPerSeason: catalog.Money(buyCost),
			})
		default:
			entry = catalog.NewMovie(title, genre, rating, catalog.Movie{
				Duration:     duration,
				RentCost:     catalog.Money(rentCost),
				PurchaseCost: catalog.Money(buyCost),
			})
		}
		if err := cat.Insert(entry); err != nil {
			return nil, fmt.Errorf("import content: %w", err)
		}
	}
	return cat, rows.Err()
}

func (s *Store) importAccounts(ctx context.Context) (*ledger.Accounts, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	accounts := ledger.NewAccounts()
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		if _, err := accounts.Create(username); err != nil {
			return nil, fmt.Errorf("import account: %w", err)
		}
	}
	return accounts, rows.Err()
}

func (s *Store) importRentals(ctx context.Context, accounts *ledger.Accounts) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT a.username, r.title, r.season, r.rent_date, r.due_date
         FROM rentals r JOIN accounts a ON a.position = r.account_position
         ORDER BY r.account_position, r.position`)
	if err != nil {
		return fmt.Errorf("query rentals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var username, title, rentDate, dueDate string
		var season int
		if err := rows.Scan(&username, &title, &season, &rentDate, &dueDate); err != nil {
			return fmt.Errorf("scan rental: %w", err)
		}
		account, err := accounts.Get(username)
		if err != nil {
			return err
		}
		if err := account.Rent(title, season, rentDate, dueDate); err != nil {
			return fmt.Errorf("import rental for %q: %w", username, err)
		}
	}
	return rows.Err()
}

func (s *Store) importPurchases(ctx context.Context, accounts *ledger.Accounts) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT a.username, p.title, p.season
         FROM purchases p JOIN accounts a ON a.position = p.account_position
         ORDER BY p.account_position, p.position`)
	if err != nil {
		return fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var username, title string
		var season int
		if err := rows.Scan(&username, &title, &season); err != nil {
			return fmt.Errorf("scan purchase: %w", err)
		}
		account, err := accounts.Get(username)
		if err != nil {
			return err
		}
		if err := account.Purchase(title, season); err != nil {
			return fmt.Errorf("import purchase for %q: %w", username, err)
		}
	}
	return rows.Err()
}
