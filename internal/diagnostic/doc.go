// Package diagnostic provides structured findings from classification,
// configuration checking, and code generation.
//
// Key capabilities:
//   - Caller errors (unknown members, unresolvable entities)
//   - Accepted-limitation notices (static surface loss without origin)
//   - Unchecked-escape warnings
//   - Severity-ordered reporting for the CLI
package diagnostic
