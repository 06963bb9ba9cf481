// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data integral so Bareiss division stays exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/homology/matrix"
	"github.com/katalvlaran/homology/ring"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths of kernels.
type hide[T any] struct{ matrix.Matrix[T] }

// mustInts builds an integer matrix or fails the test.
func mustInts(tb testing.TB, rows [][]int) *matrix.Dense[int] {
	tb.Helper()
	m, err := matrix.FromInts(rows)
	if err != nil {
		tb.Fatalf("FromInts: %v", err)
	}

	return m
}

// mustNew allocates an r×c integer zero matrix or fails the test.
func mustNew(tb testing.TB, r, c int) *matrix.Dense[int] {
	tb.Helper()
	m, err := matrix.New[int](ring.Int[int]{}, r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// fillRand fills m with small integers in [-lim, lim] from a fixed seed.
func fillRand(tb testing.TB, m *matrix.Dense[int], seed int64, lim int) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Intn(2*lim+1)-lim); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// toRows reads m back into a nested slice.
func toRows[T any](tb testing.TB, m *matrix.Dense[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			tb.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = row
	}

	return out
}
