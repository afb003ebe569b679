// Package main is the entry point for the tixcov CLI.
package main

import "tixcov.dev/pkg/tixcov/cmd"

func main() {
	cmd.Execute()
}
