// Package main is the entry point for the treasuremap CLI.
package main

import "gooze.dev/pkg/treasuremap/cmd"

func main() {
	cmd.Execute()
}
