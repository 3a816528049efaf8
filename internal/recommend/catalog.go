// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is an immutable, ordered set of items with ID and title indexes.
type Catalog struct {
	items   []Item
	byID    map[int]int
	byTitle map[string]int
}

// NewCatalog validates items and indexes them. Items keep their input order.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:   make([]Item, len(items)),
		byID:    make(map[int]int, len(items)),
		byTitle: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i := range c.items {
		item := &c.items[i]
		if item.ID <= 0 {
			return nil, fmt.Errorf("%w: item %q has non-positive id %d", ErrInvalidCatalog, item.Title, item.ID)
		}
		if item.Title == "" {
			return nil, fmt.Errorf("%w: item %d has no title", ErrInvalidCatalog, item.ID)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, item.ID)
		}
		if _, dup := c.byTitle[item.Title]; dup {
			return nil, fmt.Errorf("%w: duplicate title %q", ErrInvalidCatalog, item.Title)
		}
		c.byID[item.ID] = i
		c.byTitle[item.Title] = i
	}
	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByID looks up an item by ID.
func (c *Catalog) ByID(id int) (Item, bool) {
	pos, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[pos], true
}

// ByTitle looks up an item by exact title.
func (c *Catalog) ByTitle(title string) (Item, bool) {
	pos, ok := c.byTitle[title]
	if !ok {
		return Item{}, false
	}
	return c.items[pos], true
}

// TopRated returns up to n items by descending quality score, ties by
// ascending ID. A non-empty genre keeps only items whose genre contains it,
// case-insensitively.
func (c *Catalog) TopRated(n int, genre string) []Item {
	genre = strings.ToLower(strings.TrimSpace(genre))

	out := make([]Item, 0, len(c.items))
	for i := range c.items {
		if genre != "" && !strings.Contains(strings.ToLower(c.items[i].Genre), genre) {
			continue
		}
		out = append(out, c.items[i])
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Search returns items, in catalog order, whose title, genre, director or
// keywords contain query case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Item, 0)
	for i := range c.items {
		if c.items[i].matches(query) {
			out = append(out, c.items[i])
		}
	}
	return out
}
