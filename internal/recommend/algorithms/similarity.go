// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package algorithms

// SimilarityMatrix is a dense, symmetric N x N matrix of pairwise cosine
// similarities, stored row-major.
type SimilarityMatrix struct {
	n    int
	data []float64
}

// ComputeSimilarity computes the cosine similarity of every pair of vectors.
//
// sim(i,j) is 0 when either vector has zero norm. The diagonal is exactly 1
// for non-zero vectors and 0 for zero vectors. Only the upper triangle is
// computed; the lower triangle is a mirror, so the matrix is symmetric
// bit for bit.
func ComputeSimilarity(vectors []SparseVector) *SimilarityMatrix {
	n := len(vectors)
	m := &SimilarityMatrix{n: n, data: make([]float64, n*n)}

	norms := make([]float64, n)
	for i := range vectors {
		norms[i] = vectors[i].Norm()
	}

	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		m.data[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			sim := clampUnit(vectors[i].Dot(vectors[j]) / (norms[i] * norms[j]))
			m.data[i*n+j] = sim
			m.data[j*n+i] = sim
		}
	}
	return m
}

// Size returns N.
func (m *SimilarityMatrix) Size() int {
	return m.n
}

// At returns sim(i, j).
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *SimilarityMatrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])
	return row
}
