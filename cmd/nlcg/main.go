// Package main provides the nlcg command-line tool.
package main

import (
	"os"

	"github.com/born-ml/nlcg/cmd/nlcg/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
