// Package config provides the YAML schema, parsing and validation for
// generator configuration.
//
// The config file is the authoritative statement of policy: which
// packages to load, which entities to wrap, whether each wrap tracks its
// origin, and which guard pattern applies. Patterns are written as data
// (guard.Spec) and compiled at load time, so a configured policy is fixed
// before any shape is derived.
//
// Example:
//
//	version: "1"
//	packages:
//	  - ./catalog
//	output:
//	  dir: ./guarded
//	  package: guarded
//	entities:
//	  - type: catalog.Product
//	    track_origin: true
//	    restricted: [Stock, PriceCents]
//	  - type: catalog.Customer
//	    pattern: {kind: suffix, suffix: Raw}
package config
