// Package view implements the member-classification and view-derivation
// engine.
//
// The pipeline is: a captured entity's facet shapes enter Classify, the
// guard pattern decides restricted-vs-open, Restrict produces the
// externally publishable view, and Wrap packages both facets into one
// constructible unit, optionally tagged with an origin marker.
//
// # Forward and reverse paths
//
//   - Wrap: forward derivation. Pure, representation preserving.
//   - Recover: checked reversal. Succeeds only on values carrying an
//     origin marker minted by a real prior Wrap; fails with
//     ErrOriginUnavailable otherwise.
//   - UnsafeRelax / UnsafeRecover: unchecked structural reversal. No
//     origin proof; the caller owns the assertion.
//
// A wrapped value is restricted from the moment Wrap returns and stays so;
// the only ways to regain full mutability are the two reverse paths above,
// and the only way back into the restricted state is wrapping again.
// Re-wrapping accepts any entity, including one obtained from Recover.
//
// Every operation here is a synchronous, side-effect-free structural
// relabeling; derivation results are memoized per distinct (entity,
// pattern, origin mode) combination but the cache is an optimization only.
package view
