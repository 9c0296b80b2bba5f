// Package testutil provides testing utilities for newsdata.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating synthetic headline rows and for
// writing tabular fixtures.
//
// # Synthetic Rows
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Headlines(1000, 500) // [title, up_votes] pairs
//
// # Fixtures
//
//	data := testutil.CSV([]string{"title", "up_votes"}, rows...)
//	path := testutil.WriteFile(t, "news.csv", data)
package testutil
