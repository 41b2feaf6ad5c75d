// Package commands implements the ace-cred subcommands. Each Run
// function takes raw arguments and output writers and returns a process
// exit code, so it can be tested without spawning the binary.
package commands

// Exit codes shared by all subcommands.
const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)
