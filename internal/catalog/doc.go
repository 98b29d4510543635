// Package catalog owns the content catalog: movies and TV shows keyed by
// unique title.
//
// Entry is a closed two-variant record. Kind selects which payload (Movie or
// Show) is meaningful, and RentCost, PurchaseCost, and Describe dispatch on
// it. Ledger records elsewhere refer to entries by title only, so removing an
// entry never leaves a dangling pointer; callers that own ledgers are
// responsible for dropping records that referenced the removed title.
//
// Catalog keeps insertion order. Filter returns a lazy iter.Seq that can be
// ranged over any number of times; combine the predicates in predicates.go
// with And to express browse and search queries.
package catalog
