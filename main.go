// Package main provides the recordconv command-line tool for converting
// record data between CSV and JSON with text normalization.
package main

import (
	"recordconv/cmd"
)

func main() {
	cmd.Execute()
}
