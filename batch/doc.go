// Package batch runs one parser over many inputs concurrently and reports
// the outcome of each. It is the layer that turns parsec results into
// user-facing output; package parsec itself does no I/O.
package batch
