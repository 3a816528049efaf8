// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package algorithms

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SparseVector holds the non-zero entries of a vector, ordered by
// ascending Indices.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Norm returns the Euclidean norm, summed in index order.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of two sparse vectors.
func (v SparseVector) Dot(o SparseVector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			dot += v.Values[i] * o.Values[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

// TFIDFIndex is a term-weighting index over an ordered corpus.
//
// Vocabulary is sorted lexicographically; IDF[k] is the smoothed inverse
// document frequency ln((1+N)/(1+df)) + 1 of Vocabulary[k]; Vectors[i] is
// the L2-normalised raw-count x IDF vector of document i.
type TFIDFIndex struct {
	Vocabulary []string
	IDF        []float64
	Vectors    []SparseVector
}

// BuildTFIDF builds the index. Output is a pure function of docs: the same
// documents always give the same vocabulary, weights and vectors.
func BuildTFIDF(docs []string) *TFIDFIndex {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range tokenize(doc) {
			if counts[i][tok] == 0 {
				df[tok]++
			}
			counts[i][tok]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	termIndex := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for k, term := range vocab {
		termIndex[term] = k
		idf[k] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i := range docs {
		vectors[i] = weigh(counts[i], termIndex, idf)
	}

	return &TFIDFIndex{
		Vocabulary: vocab,
		IDF:        idf,
		Vectors:    vectors,
	}
}

func weigh(counts map[string]int, termIndex map[string]int, idf []float64) SparseVector {
	indices := make([]int, 0, len(counts))
	for term := range counts {
		indices = append(indices, termIndex[term])
	}
	sort.Ints(indices)

	inverse := make(map[int]int, len(counts))
	for term, c := range counts {
		inverse[termIndex[term]] = c
	}

	v := SparseVector{Indices: indices, Values: make([]float64, len(indices))}
	for pos, k := range indices {
		v.Values[pos] = float64(inverse[k]) * idf[k]
	}

	if norm := v.Norm(); norm > 0 {
		for pos := range v.Values {
			v.Values[pos] /= norm
		}
	}
	return v
}

// tokenize lower-cases text, splits it into runs of letters, digits and
// underscores, and drops single-character tokens and English stop words.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
