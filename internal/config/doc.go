// Package config holds runtime configuration for pokefetch.
//
// Configuration flows from three sources, later ones winning:
//  1. built-in defaults (NewConfig)
//  2. the YAML configuration file (.pokefetch in the current directory or
//     the XDG config directory)
//  3. CLI flags and the POKEFETCH_DB_PASSWORD environment variable
//
// Design decision: The config is a single flat struct populated once at
// startup and passed through the application explicitly, never read from
// global state. Validation happens once, after all sources are merged,
// so every component downstream can trust its inputs.
package config
