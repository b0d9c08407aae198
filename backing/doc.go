/*
Package backing implements the ordered section→item hierarchy behind a
snapshot.

The package is intentionally not a generic container. It is specialized for
two-level ordered sequences with identity tracking: every item identifier is
unique across the whole structure, every section key is unique, and all
structural edits preserve both invariants or refuse to run.

Mutations come in two families with different failure policies:

  - Anchor operations (append/insert/move relative to an existing element)
    return an error when the anchor is absent or an identity would be
    duplicated. They validate all preconditions first and only then touch the
    structure, so a failed call leaves the structure unchanged.
  - Batch operations (remove/update over identifier sets) silently skip
    identifiers that are no longer present. Callers routinely hold stale
    identifier sets, so absence is not an error there.

Derived state, in particular the identifier→position index, is recomputed on
demand from the structure and never maintained incrementally. This is a
correctness-first trade-off: an incrementally updated index would have to be
kept consistent across every mutation path. For very large structures an
incremental index is a possible extension, provided observable query results
stay identical.
*/
package backing

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
