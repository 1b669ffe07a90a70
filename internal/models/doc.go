// Package models defines the domain values of the tip calculator.
//
// # Models
//
//   - TipInput: the raw form state (bill text, tip percent text, round-up flag)
//   - TipResult: the derived tip, both as a decimal and as display text
//
// Nothing here is persisted. Every value lives for one screen session and is
// rebuilt from the current TipInput whenever an input changes.
package models
