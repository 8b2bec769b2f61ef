// Package assets resolves front-end static files.
//
// Two roots are configured: a primary root holding the packaged build and a
// secondary root holding the raw UI sources. On every request the resolver checks
// whether the primary root exists and serves from it if so, otherwise from the
// secondary root. A file missing from the selected root is not looked up in the
// other one. Config.PinRoot fixes the choice for environments that need it.
//
// Paths under api/ are API paths and are rejected with ErrReservedPath before any
// filesystem access.
package assets
