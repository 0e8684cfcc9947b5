// Package gen provides deterministic Go code generation for guarded view
// types.
//
// Generation approach uses text/template + go/format for readable output.
//
// Per planned entity the generated file carries:
//   - a view struct holding a pointer to the source value (zero copy)
//   - getter+setter accessors for open members, getter only for guarded
//     members, nothing for subclass-only or private members
//   - an entity-level statics type exposing classified static members
//   - a Recover method only when the wrap tracks origin; without it the
//     recovery path simply does not exist in the generated surface
//   - the UnsafeRelax escape function only when configuration allows it
package gen
