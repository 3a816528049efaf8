// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import (
	"strings"
	"time"
)

// Strategy labels used in hybrid results.
const (
	LabelContent       = "Content-Based"
	LabelCollaborative = "Collaborative Filtering"
)

// Item is a movie in the catalog.
type Item struct {
	// ID is the unique, stable identifier.
	ID int `json:"id" validate:"required,gt=0"`

	// Title is unique within the catalog and is the lookup key for
	// content recommendations and rating submission.
	Title string `json:"title" validate:"required,notblank"`

	// Genre is a space separated list of genre tags, e.g. "Sci-Fi Thriller".
	Genre string `json:"genre"`

	// Director is the director or creator.
	Director string `json:"director"`

	Year int `json:"year" validate:"gte=0"`

	// Score is the quality score on a 0-10 scale.
	Score float64 `json:"score" validate:"gte=0,lte=10"`

	// Keywords is a free text keyword bag.
	Keywords string `json:"keywords"`
}

// Features returns the combined feature bag fed to the content index.
func (i *Item) Features() string {
	return i.Genre + " " + i.Director + " " + i.Keywords
}

// matches reports whether the lower-cased query occurs in any searchable field.
func (i *Item) matches(query string) bool {
	return strings.Contains(strings.ToLower(i.Title), query) ||
		strings.Contains(strings.ToLower(i.Genre), query) ||
		strings.Contains(strings.ToLower(i.Director), query) ||
		strings.Contains(strings.ToLower(i.Keywords), query)
}

// Rating is one append-only rating event.
type Rating struct {
	UserID    int       `json:"user_id"`
	ItemID    int       `json:"item_id"`
	Value     float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Prediction is a scored item ID produced by a model.
type Prediction struct {
	ItemID int
	Score  float64
}

// ScoredItem is a recommended movie with its score.
//
// For content results Score is the cosine similarity to the anchor; for
// collaborative results it is the best rating a selected peer gave the movie.
type ScoredItem struct {
	Item  Item    `json:"item"`
	Score float64 `json:"score"`
}

// StrategyResult is one labeled entry of a hybrid response.
type StrategyResult struct {
	Label string       `json:"label"`
	Items []ScoredItem `json:"items"`
}

// HybridRequest selects which strategies run. Nil fields are skipped.
type HybridRequest struct {
	UserID *int
	Title  *string
	N      int
}

// ModelStats describes a trained model.
type ModelStats struct {
	Name          string    `json:"name"`
	Trained       bool      `json:"trained"`
	Version       int       `json:"version"`
	LastTrainedAt time.Time `json:"last_trained_at"`
}

// Stats is a snapshot of engine state.
type Stats struct {
	Items          int          `json:"items"`
	Vocabulary     int          `json:"vocabulary"`
	Ratings        int          `json:"ratings"`
	Users          int          `json:"users"`
	RatingsVersion uint64       `json:"ratings_version"`
	Models         []ModelStats `json:"models"`
}
