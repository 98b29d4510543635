package catalog

import (
	"fmt"
	"iter"
	"slices"
)

// Catalog stores entries in insertion order with unique titles.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Insert adds an entry. The catalog is unchanged when an error is returned.
func (c *Catalog) Insert(entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, exists := c.index[entry.Title]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, entry.Title)
	}
	c.index[entry.Title] = len(c.entries)
	c.entries = append(c.entries, entry)
	return nil
}

// Remove deletes and returns the entry with the given title.
func (c *Catalog) Remove(title string) (Entry, error) {
	pos, ok := c.index[title]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	removed := c.entries[pos]
	c.entries = slices.Delete(c.entries, pos, pos+1)
	delete(c.index, title)
	for i := pos; i < len(c.entries); i++ {
		c.index[c.entries[i].Title] = i
	}
	return removed, nil
}

// Lookup returns the entry with the given title.
func (c *Catalog) Lookup(title string) (Entry, bool) {
	pos, ok := c.index[title]
	if !ok {
		return Entry{}, false
	}
	return c.entries[pos], true
}

// Contains reports whether title is present.
func (c *Catalog) Contains(title string) bool {
	_, ok := c.index[title]
	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns a copy of every entry in insertion order.
func (c *Catalog) All() []Entry {
	return slices.Clone(c.entries)
}

// Filter yields the entries matching pred in insertion order. A nil pred
// matches everything. The sequence holds no state between iterations.
func (c *Catalog) Filter(pred Predicate) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range c.entries {
			if pred != nil && !pred(entry) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}
