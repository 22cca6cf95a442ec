// Package fetch retrieves web pages and parses them into queryable documents.
//
// The Fetcher wraps an HTTP client (go-resty) and an HTML parser (goquery).
// Every call re-fetches; there is no caching, retrying, or rate limiting.
// HTML is parsed leniently: malformed markup yields a best-effort document
// rather than an error, matching how browsers treat real-world pages.
package fetch
