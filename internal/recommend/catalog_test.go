// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"errors"
	"reflect"
	"testing"
)

func catalogItems() []Item {
	return []Item{
		{ID: 1, Title: "Inception", Genre: "Sci-Fi Thriller", Director: "Christopher Nolan", Year: 2010, Score: 8.8, Keywords: "dreams reality heist"},
		{ID: 2, Title: "The Office", Genre: "Comedy", Director: "Greg Daniels", Year: 2005, Score: 9.0, Keywords: "workplace mockumentary"},
		{ID: 3, Title: "Parasite", Genre: "Thriller Drama", Director: "Bong Joon-ho", Year: 2019, Score: 8.5, Keywords: "class inequality"},
		{ID: 4, Title: "Breaking Bad", Genre: "Crime Drama Thriller", Director: "Vince Gilligan", Year: 2008, Score: 9.5, Keywords: "drugs chemistry"},
		{ID: 5, Title: "Arrival", Genre: "Sci-Fi Drama", Director: "Denis Villeneuve", Year: 2016, Score: 8.5, Keywords: "language aliens time"},
	}
}

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{"zero id", []Item{{ID: 0, Title: "A"}}},
		{"empty title", []Item{{ID: 1}}},
		{"duplicate id", []Item{{ID: 1, Title: "A"}, {ID: 1, Title: "B"}}},
		{"duplicate title", []Item{{ID: 1, Title: "A"}, {ID: 2, Title: "A"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.items); !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("NewCatalog() error = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := NewCatalog(catalogItems())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	if item, ok := c.ByTitle("Parasite"); !ok || item.ID != 3 {
		t.Errorf("ByTitle(Parasite) = %+v, %v, want id 3", item, ok)
	}
	if _, ok := c.ByTitle("parasite"); ok {
		t.Error("ByTitle() matched a different case, want exact match")
	}
	if item, ok := c.ByID(5); !ok || item.Title != "Arrival" {
		t.Errorf("ByID(5) = %+v, %v, want Arrival", item, ok)
	}
	if _, ok := c.ByID(42); ok {
		t.Error("ByID(42) found, want missing")
	}

	items := c.Items()
	items[0].Title = "changed"
	if item, _ := c.ByID(1); item.Title != "Inception" {
		t.Errorf("Items() returned shared storage, title now %q", item.Title)
	}
}

func TestCatalog_TopRated(t *testing.T) {
	c, err := NewCatalog(catalogItems())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	tests := []struct {
		name  string
		n     int
		genre string
		want  []int
	}{
		{"all by score", 10, "", []int{4, 2, 1, 3, 5}},
		{"score ties by id", 2, "drama", []int{4, 3}},
		{"genre filter case insensitive", 10, "SCI-FI", []int{1, 5}},
		{"truncated", 1, "", []int{4}},
		{"no match", 5, "western", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(c.TopRated(tt.n, tt.genre)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopRated(%d, %q) = %v, want %v", tt.n, tt.genre, got, tt.want)
			}
		})
	}
}

func TestCatalog_Search(t *testing.T) {
	c, err := NewCatalog(catalogItems())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	tests := []struct {
		query string
		want  []int
	}{
		{"nolan", []int{1}},
		{"THRILLER", []int{1, 3, 4}},
		{"time", []int{5}},
		{"office", []int{2}},
		{"  drama ", []int{3, 4, 5}},
		{"", []int{1, 2, 3, 4, 5}},
		{"zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := ids(c.Search(tt.query)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"inverted scale", func(c *Config) { c.RatingMin, c.RatingMax = 5, 1 }, true},
		{"zero default results", func(c *Config) { c.DefaultResults = 0 }, true},
		{"zero default top rated", func(c *Config) { c.DefaultTopRated = 0 }, true},
		{"max below default", func(c *Config) { c.MaxResults = 3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Limit(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{-3, 0},
		{7, 7},
		{100, 100},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := cfg.limit(tt.n); got != tt.want {
			t.Errorf("limit(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
