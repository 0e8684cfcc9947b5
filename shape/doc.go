// Package shape provides the structural data model for entities and their
// facets.
//
// Key types:
//   - EntityID: package import path + type name
//   - Member: name, rendered type, visibility tag, mutability
//   - Shape: immutable member set for one facet (instance or static)
//   - Entity: identity + both facet shapes, captured once
//
// Visibility is a capability tag (open/subclass/private), not a Go access
// modifier: only open members are ever subject to guard classification.
package shape
