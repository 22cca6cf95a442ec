// Package scrape extracts structured data from pokemondb.net documents.
//
// Two extractors are provided:
//   - ExtractEntityLinks: pulls the per-Pokémon detail links off the national
//     Pokédex listing page
//   - ExtractAttributes: flattens a detail page's name heading and basic-info
//     tables into a single ordered attribute map
//
// Both operate on goquery documents produced by the fetch package and use
// fixed CSS selectors matching the site's markup. The selectors are
// deliberately narrow; if the site layout changes, extraction returns empty
// results (listing) or a missing-field error (detail) rather than guessing.
package scrape
