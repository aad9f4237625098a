// Command tomling is the CLI entry point, wiring cobra's root command
// (package cmd) into a standard main.
package main

import "github.com/zeenix/tomling/cmd"

func main() {
	cmd.Execute()
}
