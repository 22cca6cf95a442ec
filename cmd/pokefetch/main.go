// Package main provides the entry point for the pokefetch CLI.
//
// Pokefetch scrapes the national Pokédex listing, collects the basic data
// table of every Pokémon detail page, and replaces a relational table with
// the merged result.
//
// Usage:
//
//	pokefetch run
//	pokefetch run --workers 8 --markdown -o report.md
//
// See --help for all available options.
package main

// main is the entry point for pokefetch.
func main() {
	Execute()
}
