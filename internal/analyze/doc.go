// Package analyze provides package loading and entity facet capture.
//
// It uses golang.org/x/tools/go/packages with go/types to build the
// immutable facet shapes the engine consumes:
//
//   - instance facet: the entity struct's fields, with visibility derived
//     from export status and the `guard` struct tag
//   - static facet: exported package-level vars and consts named with the
//     entity prefix (ProductDefaultCurrency -> Product member
//     DefaultCurrency)
//
// Shapes are captured once per entity and never mutated; Captured also
// records the source-level detail (declaration names, imports) that code
// generation needs.
package analyze
