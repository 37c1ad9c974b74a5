// Package luhn provides the command-line interface for the luhn tool.
// It configures subcommands (validate, checksum, generate, tui), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/luhn/cmd/luhn"
//	func main() { luhn.Execute() }
package luhn
