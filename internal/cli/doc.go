// Package cli parses command-line arguments, validates them, runs the
// stylesheet generation and maps failures to process exit codes.
package cli
