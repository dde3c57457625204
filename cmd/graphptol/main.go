// Command graphptol edits small undirected graphs, finds shortest paths and
// converts between adjacency matrix and adjacency list files.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
