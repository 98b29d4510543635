package ledger

// Rental is an active rental. Dates are opaque strings stamped by the caller.
type Rental struct {
	Title    string
	Season   int
	RentDate string
	DueDate  string
}

// Purchase is a permanent purchase record.
type Purchase struct {
	Title  string
	Season int
}

func (r Rental) matches(title string, season int) bool {
	return r.Title == title && r.Season == season
}

func (p Purchase) matches(title string, season int) bool {
	return p.Title == title && p.Season == season
}
