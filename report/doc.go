// SPDX-License-Identifier: MIT

// Package report persists the outcome of a min-cut run as TOML.
//
// A report holds the run parameters, the karger.Stats of the run and,
// when a labeled contraction was requested, the two sides of the cut found.
// Saving rotates the previous report into a bounded history, so one file
// tracks repeated runs over the same input.
package report
