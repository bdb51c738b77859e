// Package cli implements the fluidcss command line interface.
//
// Commands share a small amount of plumbing: RootOptions carries the
// global --verbose and --format flags, OutputFormatter renders results
// as human text or a JSON envelope, and ExitError maps failures onto
// process exit codes (1 for validation failures, 2 for command errors
// such as unreadable files).
package cli
