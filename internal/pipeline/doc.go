// Package pipeline orchestrates a scrape-and-persist run.
//
// A run moves through a fixed sequence: fetch the catalog listing and
// extract entity links, then fetch and extract every entity detail page
// while accumulating rows, then persist the finished table. Each phase is a
// Step executed in order by the Pipeline against a shared Run value.
//
// Design decision: Steps stop the run on the first error. The source of
// failure is almost always systemic (site unreachable, layout changed), and
// persisting a partial table would silently produce a wrong dataset; there
// is deliberately no skip-and-continue mode.
package pipeline
