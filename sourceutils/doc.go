// Package sourceutils is the source rewriting and position-mapping engine
// of an interactive JavaScript debugger. It makes user-typed snippets
// runnable without changing their observable semantics (top-level await
// wrapping, object literal disambiguation), extracts sourceMappingURL
// directives, verifies that on-disk files still match what the debugged
// runtime loaded, picks the best generated position for a location the
// user sees, and builds inverse source maps for pretty-printed minified
// code.
//
// Every operation is a per-call transform: parse failures and declined
// rewrites come back as explicit results rather than errors, because
// user-typed snippets are frequently invalid and must never crash the
// debugger.
package sourceutils
