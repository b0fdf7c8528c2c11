// Package latinsquare samples uniformly random Latin squares of arbitrary
// order by bit-recursion: each bit of every cell's value is realized as an
// independent binary contingency table, nested so that each level's table
// is confined, via a forced-zero mask, to the region its parent bit
// already carved out.
package latinsquare
