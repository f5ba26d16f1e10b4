// Package vb6version contains information on the current version of the
// vb6parse tool. It is split from the main program for easy use by both
// cmd/vb6p and internal/vb6server.
package vb6version

// Current is the string representing the current version of vb6parse.
const Current = "0.1.0"
