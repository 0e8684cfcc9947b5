// Package guard provides the pattern predicates that decide which members
// of a shape are restricted.
//
// Patterns are data, not behavior: each is a small value with a canonical
// String form, fixed at the point an entity is wrapped. The default
// pattern restricts names carrying a leading "_" marker. Suffix, explicit
// name-set and anchored-regexp patterns are available for sources whose
// naming conventions differ, and Spec provides the YAML form used by
// configuration files.
package guard
