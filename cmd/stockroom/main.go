// Package main is the entry point for the stockroom CLI, a local
// product-inventory manager.
package main

import "github.com/yourorg/stockroom/cmd/stockroom/cmd"

func main() {
	cmd.Execute()
}
