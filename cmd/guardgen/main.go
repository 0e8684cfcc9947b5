// Package main provides the CLI entrypoint for guardgen.
//
// guardgen is a build-time visibility-policy tool that:
//   - Loads Go packages (go/types) and captures entity facet shapes
//   - Classifies members against a configured guard pattern
//   - Derives guarded views (read-only for restricted members)
//   - Generates view types whose compiled surface enforces the policy
package main

import "guardgen/internal/cli"

func main() {
	cli.Execute()
}
