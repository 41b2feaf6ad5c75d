// ace-cred is a CLI tool for generating and converting ACE-OAuth device
// credential files.
package main

import (
	"fmt"
	"os"

	"github.com/coap-security/coap-ace-poc-configs/cmd/ace-cred/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "generate":
		exitCode = commands.RunGenerate(args, os.Stdout, os.Stderr)
	case "admin-value":
		exitCode = commands.RunAdminValue(args, os.Stdout, os.Stderr)
	case "playground":
		exitCode = commands.RunPlayground(args, os.Stdout, os.Stderr)
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = 0
	case "version", "-v", "--version":
		fmt.Println("ace-cred version 0.1.0")
		exitCode = 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = 1
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`ace-cred - ACE-OAuth device credential tool

Usage:
  ace-cred <command> [options]

Commands:
  generate     Generate device credential YAML files for a demo batch
  admin-value  Encode device public keys for the Keycloak admin GUI
  playground   Build playground provisioning calls from credential files
  validate     Check credential files against the interchange contract

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  ace-cred generate -n 10 -edhoc -out configs/
  ace-cred admin-value -dir configs/
  ace-cred playground -dir configs/ > provision.sh
  ace-cred validate -dir configs/

For command-specific help, run:
  ace-cred <command> --help`)
}
