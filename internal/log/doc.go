// Package log provides structured logging with credential redaction.
//
// The database connection spec carries a plaintext password end to end, and
// the DSN embeds it. SecureHandler wraps any slog.Handler and masks
// attribute values that look like credentials before they reach the output,
// so a careless log call can't leak the destination password.
package log
