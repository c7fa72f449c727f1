// Package holdall provides the command-line interface for the Holdall tool.
// It configures subcommands (show, find, remove, etc.), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/holdall/holdall/cmd/holdall"
//	func main() { holdall.Execute() }
package holdall
