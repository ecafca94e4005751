// Package screener provides the types and functions to analyze a universe of
// financial instruments described by flat tabular files. It is designed to be
// local-first and deterministic: one input file in, one ranked result out,
// with no retained state between runs.
//
// The core functionalities include:
//   - Record Loading: parsing delimited tabular input into validated
//     instruments, substituting documented defaults for optional fields and
//     skipping malformed rows without aborting the batch.
//   - Metric Derivation: annotating every instrument with its earnings
//     pass-through (eps), return on investment (roi) and valuation index,
//     computed exactly once after load.
//   - Screening: filtering the collection against valuation and risk
//     thresholds and ranking the survivors by valuation index.
//   - Reporting: summarizing a run (counts, criteria, ranked rows) and
//     computing collection-wide statistics for the reporting layer.
//   - Export: writing the ranked result back to a delimited file with the
//     computed columns appended.
//
// This package serves as the foundational logic for the `scr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package screener
