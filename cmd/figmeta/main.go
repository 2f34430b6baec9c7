// Package main provides the figmeta CLI.
package main

import (
	"os"

	"github.com/teachbooks/figmeta/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
