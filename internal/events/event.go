// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// EventTypeRatingSubmitted is set in the "event_type" message metadata.
const EventTypeRatingSubmitted = "rating.submitted"

// ErrInvalidEvent is returned when a payload does not decode to a usable event.
var ErrInvalidEvent = errors.New("invalid rating event")

// RatingSubmitted is published once a rating is stored.
type RatingSubmitted struct {
	EventID   string    `json:"event_id"`
	UserID    int       `json:"user_id"`
	ItemID    int       `json:"item_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRatingSubmitted builds an event for r with a fresh event ID.
func NewRatingSubmitted(r recommend.Rating) *RatingSubmitted {
	return &RatingSubmitted{
		EventID:   uuid.NewString(),
		UserID:    r.UserID,
		ItemID:    r.ItemID,
		Rating:    r.Value,
		CreatedAt: r.CreatedAt,
	}
}

// ToRating converts the event back into a rating.
func (e *RatingSubmitted) ToRating() recommend.Rating {
	return recommend.Rating{
		UserID:    e.UserID,
		ItemID:    e.ItemID,
		Value:     e.Rating,
		CreatedAt: e.CreatedAt,
	}
}

// SerializeEvent encodes e as JSON.
func SerializeEvent(e *RatingSubmitted) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil event", ErrInvalidEvent)
	}
	return json.Marshal(e)
}

// DeserializeEvent decodes and checks a JSON payload.
func DeserializeEvent(data []byte) (*RatingSubmitted, error) {
	var e RatingSubmitted
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if e.EventID == "" {
		return nil, fmt.Errorf("%w: missing event_id", ErrInvalidEvent)
	}
	if e.UserID <= 0 || e.ItemID <= 0 {
		return nil, fmt.Errorf("%w: user_id and item_id must be positive", ErrInvalidEvent)
	}
	return &e, nil
}
