// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package algorithms

import (
	"fmt"
	"sort"

	"github.com/tomtom215/cinerec/internal/recommend"
)

// DuplicatePolicy resolves several ratings of the same movie by one user.
type DuplicatePolicy string

const (
	// DuplicateMean averages all ratings of the pair.
	DuplicateMean DuplicatePolicy = "mean"

	// DuplicateLatest keeps the rating appended last.
	DuplicateLatest DuplicatePolicy = "latest"
)

// ParseDuplicatePolicy validates a policy name.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case DuplicateMean, DuplicateLatest:
		return p, nil
	case "":
		return DuplicateMean, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// UserItemMatrix is a sparse user x item rating matrix.
//
// Rows are users with at least one rating and columns are rated items, both
// in ascending ID order. A missing cell means "not rated"; it only becomes
// 0 in the dense rows produced for cosine similarity.
type UserItemMatrix struct {
	cells   map[int]map[int]float64
	users   []int
	items   []int
	itemPos map[int]int
}

// BuildUserItemMatrix projects ratings, in append order, into a matrix.
func BuildUserItemMatrix(ratings []recommend.Rating, policy DuplicatePolicy) *UserItemMatrix {
	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[int]map[int]*acc)

	for _, r := range ratings {
		row := sums[r.UserID]
		if row == nil {
			row = make(map[int]*acc)
			sums[r.UserID] = row
		}
		a := row[r.ItemID]
		if a == nil {
			a = &acc{}
			row[r.ItemID] = a
		}
		if policy == DuplicateLatest {
			a.sum, a.count = r.Value, 1
			continue
		}
		a.sum += r.Value
		a.count++
	}

	m := &UserItemMatrix{
		cells:   make(map[int]map[int]float64, len(sums)),
		users:   make([]int, 0, len(sums)),
		itemPos: make(map[int]int),
	}
	itemSet := make(map[int]struct{})
	for user, row := range sums {
		m.users = append(m.users, user)
		cells := make(map[int]float64, len(row))
		for item, a := range row {
			cells[item] = a.sum / float64(a.count)
			itemSet[item] = struct{}{}
		}
		m.cells[user] = cells
	}
	sort.Ints(m.users)

	m.items = make([]int, 0, len(itemSet))
	for item := range itemSet {
		m.items = append(m.items, item)
	}
	sort.Ints(m.items)
	for pos, item := range m.items {
		m.itemPos[item] = pos
	}
	return m
}

// Users returns the row user IDs in ascending order.
func (m *UserItemMatrix) Users() []int {
	return append([]int(nil), m.users...)
}

// Items returns the column item IDs in ascending order.
func (m *UserItemMatrix) Items() []int {
	return append([]int(nil), m.items...)
}

// HasUser reports whether userID has at least one rating.
func (m *UserItemMatrix) HasUser(userID int) bool {
	_, ok := m.cells[userID]
	return ok
}

// Rating returns the resolved rating and whether the cell is set.
func (m *UserItemMatrix) Rating(userID, itemID int) (float64, bool) {
	v, ok := m.cells[userID][itemID]
	return v, ok
}

// Dense returns the user's row over the column order, with 0 for unrated
// items. An unknown user yields an all-zero (zero-norm) row.
func (m *UserItemMatrix) Dense(userID int) []float64 {
	row := make([]float64, len(m.items))
	for item, v := range m.cells[userID] {
		row[m.itemPos[item]] = v
	}
	return row
}

// row returns the sparse row; callers must not modify it.
func (m *UserItemMatrix) row(userID int) map[int]float64 {
	return m.cells[userID]
}
