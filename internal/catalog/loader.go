// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package catalog supplies the movie catalog and seed ratings the engine
// starts from: either the built-in sample or a JSON document on disk.
//
// File format:
//
//	{
//	  "items": [
//	    {"id": 1, "title": "Inception", "genre": "Sci-Fi Thriller",
//	     "director": "Christopher Nolan", "year": 2010, "score": 8.8,
//	     "keywords": "dreams reality heist"}
//	  ],
//	  "ratings": [
//	    {"user_id": 1, "item_id": 1, "rating": 5}
//	  ]
//	}
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinerec/internal/recommend"
	"github.com/tomtom215/cinerec/internal/validation"
)

// ErrInvalidFile wraps every decoding or validation failure.
var ErrInvalidFile = errors.New("invalid catalog file")

// Dataset is a catalog plus the ratings to seed the store with.
type Dataset struct {
	Items   []recommend.Item
	Ratings []recommend.Rating
}

type fileRating struct {
	UserID int     `json:"user_id" validate:"gt=0"`
	ItemID int     `json:"item_id" validate:"gt=0"`
	Value  float64 `json:"rating" validate:"gt=0"`
}

type fileDocument struct {
	Items   []recommend.Item `json:"items" validate:"required,min=1,dive"`
	Ratings []fileRating     `json:"ratings" validate:"dive"`
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a catalog document. Items must pass catalog validation and
// every rating must reference a listed item.
func Decode(r io.Reader) (*Dataset, error) {
	var doc fileDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidFile, err)
	}

	if verr := validation.ValidateStruct(&doc); verr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, verr.Error())
	}
	if _, err := recommend.NewCatalog(doc.Items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	known := make(map[int]struct{}, len(doc.Items))
	for i := range doc.Items {
		known[doc.Items[i].ID] = struct{}{}
	}

	ratings := make([]recommend.Rating, 0, len(doc.Ratings))
	for i, fr := range doc.Ratings {
		if _, ok := known[fr.ItemID]; !ok {
			return nil, fmt.Errorf("%w: rating %d references unknown item %d", ErrInvalidFile, i, fr.ItemID)
		}
		ratings = append(ratings, recommend.Rating{UserID: fr.UserID, ItemID: fr.ItemID, Value: fr.Value})
	}

	return &Dataset{Items: doc.Items, Ratings: ratings}, nil
}

// ValidateRatings checks every rating against the inclusive [lo, hi] scale
// the engine accepts. The scale is configurable, so Decode only checks
// that values are positive.
func (d *Dataset) ValidateRatings(lo, hi float64) error {
	for i, r := range d.Ratings {
		if r.Value < lo || r.Value > hi {
			return fmt.Errorf("%w: rating %d (user %d, item %d) value %g outside [%g, %g]",
				ErrInvalidFile, i, r.UserID, r.ItemID, r.Value, lo, hi)
		}
	}
	return nil
}
