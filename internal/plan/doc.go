// Package plan provides the resolution pipeline that produces the final
// Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Load packages -> capture entity facet shapes (once per entity)
//  2. Load YAML config -> validate
//  3. For each configured entity:
//     - resolve the type against loaded packages
//     - compile the guard pattern (data, fixed from here on)
//     - check explicitly named members against the captured shape
//     - wrap, deriving both restricted facets
//  4. Emit diagnostics (unknown members, empty restricted sets, static
//     surface loss, unchecked-escape warnings)
package plan
