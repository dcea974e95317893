// Package wizard runs the interactive dtopr session: it names the output
// file, collects every desktop entry field, lets the user review and
// re-enter values, writes the entry, and offers to install it.
package wizard
