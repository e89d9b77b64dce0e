// Package sourcemaps decodes, builds and queries version 3 source maps.
//
// Two coordinate conventions flow through a debugger and they differ in how
// columns are counted: editors use 1-based lines and columns (UILocation),
// while the mappings table uses 1-based lines and 0-based columns (Position).
// The package keeps the two apart as distinct types and all conversions are
// explicit.
package sourcemaps
