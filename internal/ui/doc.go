// Package ui renders execution results, assembled command lines, and failure
// messages for the execf command-line interface.
package ui
