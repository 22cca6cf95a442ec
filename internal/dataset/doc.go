// Package dataset holds the in-memory tabular model built during a run.
//
// This package contains the two core types:
//   - AttributeMap: the ordered key/value attributes of a single Pokémon
//   - Table: the accumulated rows across all scraped Pokémon
//
// Design decision: We keep the tabular model in its own package to avoid
// circular dependencies. Both the scrape package (which produces rows) and
// the database package (which persists the table) need these types.
//
// The Table grows by column union: every attribute key ever seen becomes a
// column, and rows that lack a column carry an empty value for it. This is
// the only non-trivial data-shape rule in the system and is preserved
// exactly, including column order (first-seen order).
package dataset
