// Package footprint provides the command-line interface for the Footprint
// tool. Without a subcommand it runs the interactive audit session; scan,
// catalog and config cover scripting and setup.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/footprint/cmd/footprint"
//	func main() { footprint.Execute() }
package footprint
