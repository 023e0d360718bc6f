// Package phonetic derives the romanized, upper-cased reading of a name used
// as a subtitle on single-per-slide templates.
package phonetic
