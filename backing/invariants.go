package backing

import "fmt"

// Check validates the structure's identity invariants: section keys are
// unique, and every item identifier appears in at most one place across the
// entire structure.
//
// This checker is intentionally strict and meant for tests; mutation paths
// maintain the invariants themselves.
func (st *Structure[ID, Tag]) Check() error {
	if st == nil {
		return nil
	}
	keys := make(map[string]struct{}, len(st.sections))
	ids := make(map[ID]string, st.NumItems())
	for _, s := range st.sections {
		if _, dup := keys[s.Key()]; dup {
			return fmt.Errorf("%w: section key %q occurs twice", ErrInvariantViolation, s.Key())
		}
		keys[s.Key()] = struct{}{}
		for it := range s.Items() {
			if owner, dup := ids[it.ID()]; dup {
				return fmt.Errorf("%w: item %v occurs in sections %q and %q",
					ErrInvariantViolation, it.ID(), owner, s.Key())
			}
			ids[it.ID()] = s.Key()
		}
	}
	return nil
}
