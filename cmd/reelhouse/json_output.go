package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"reelhouse/internal/catalog"
	"reelhouse/internal/ledger"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type contentView struct {
	Title             string  `json:"title"`
	Kind              string  `json:"kind"`
	Genre             string  `json:"genre"`
	Rating            float64 `json:"rating"`
	Duration          int     `json:"duration_minutes,omitempty"`
	Seasons           int     `json:"seasons,omitempty"`
	EpisodesPerSeason int     `json:"episodes_per_season,omitempty"`
	RentCost          float64 `json:"rent_cost"`
	PurchaseCost      float64 `json:"purchase_cost"`
	Rented            bool    `json:"rented"`
}

func newContentView(entry catalog.Entry, rented bool) contentView {
	view := contentView{
		Title:        entry.Title,
		Kind:         string(entry.Kind),
		Genre:        entry.Genre,
		Rating:       entry.Rating,
		RentCost:     float64(entry.RentCost()),
		PurchaseCost: float64(entry.PurchaseCost()),
		Rented:       rented,
	}
	switch entry.Kind {
	case catalog.KindMovie:
		view.Duration = entry.Movie.Duration
	case catalog.KindTVShow:
		view.Seasons = entry.Show.Seasons
		view.EpisodesPerSeason = entry.Show.EpisodesPerSeason
	}
	return view
}

type rentalView struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Season   int    `json:"season"`
	RentDate string `json:"rent_date"`
	DueDate  string `json:"due_date"`
}

func newRentalView(index int, rental ledger.Rental) rentalView {
	return rentalView{
		Index:    index + 1,
		Title:    rental.Title,
		Season:   rental.Season,
		RentDate: rental.RentDate,
		DueDate:  rental.DueDate,
	}
}

type purchaseView struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Season int    `json:"season"`
}

type chargesView struct {
	Username string  `json:"username"`
	Total    float64 `json:"total"`
	Display  string  `json:"display"`
}

type userView struct {
	Username  string `json:"username"`
	Rentals   int    `json:"rentals"`
	Purchases int    `json:"purchases"`
}
