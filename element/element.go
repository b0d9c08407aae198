package element

import "iter"

// Item is an identity-bearing element of a section.
//
// The identifier is supplied by the caller and never generated here; the tag
// records the version of the item's last structural touch. An item is a plain
// value: comparing two items with Equal compares identity and tag, which is
// the content-equality the diffing side relies on.
type Item[ID, Tag comparable] struct {
	id  ID
	tag Tag
}

// NewItem creates an item with the given identity and version tag.
func NewItem[ID, Tag comparable](id ID, tag Tag) Item[ID, Tag] {
	return Item[ID, Tag]{id: id, tag: tag}
}

// ID returns the item's identifier.
func (it Item[ID, Tag]) ID() ID {
	return it.id
}

// Tag returns the version tag of the item's last structural touch.
func (it Item[ID, Tag]) Tag() Tag {
	return it.tag
}

// Retagged returns a copy of the item stamped with a new version tag.
func (it Item[ID, Tag]) Retagged(tag Tag) Item[ID, Tag] {
	it.tag = tag
	return it
}

// Equal reports content equality: identifier and version tag both match.
func (it Item[ID, Tag]) Equal(other Item[ID, Tag]) bool {
	return it.id == other.id && it.tag == other.tag
}

// Section is a named, ordered group of items.
//
// A section owns its item slice; all positional edits go through the methods
// below so that the owning structure can rely on index arithmetic staying
// local to one place. Cross-section invariants (global identifier uniqueness)
// are not a section's concern.
type Section[ID, Tag comparable] struct {
	key   string
	tag   Tag
	items []Item[ID, Tag]
}

// NewSection creates a section with the given key, version tag and items.
func NewSection[ID, Tag comparable](key string, tag Tag, items ...Item[ID, Tag]) *Section[ID, Tag] {
	s := &Section[ID, Tag]{key: key, tag: tag}
	if len(items) > 0 {
		s.items = append(s.items, items...)
	}
	return s
}

// Key returns the section's unique key.
func (s *Section[ID, Tag]) Key() string {
	return s.key
}

// Tag returns the version tag of the section's last structural touch.
func (s *Section[ID, Tag]) Tag() Tag {
	return s.tag
}

// Retag stamps the section with a new version tag.
func (s *Section[ID, Tag]) Retag(tag Tag) {
	s.tag = tag
}

// Len returns the number of items in the section.
func (s *Section[ID, Tag]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the item at the given intra-section index.
func (s *Section[ID, Tag]) At(i int) (Item[ID, Tag], error) {
	var zero Item[ID, Tag]
	if i < 0 || i >= s.Len() {
		return zero, ErrIndexOutOfBounds
	}
	return s.items[i], nil
}

// IndexOf returns the index of the item with the given identifier,
// or -1 if the identifier is not present in this section.
func (s *Section[ID, Tag]) IndexOf(id ID) int {
	for i, it := range s.items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// Append adds items at the end of the section, preserving argument order.
func (s *Section[ID, Tag]) Append(items ...Item[ID, Tag]) {
	s.items = append(s.items, items...)
}

// InsertAt inserts an ordered run of items before index i.
// i == Len() appends.
func (s *Section[ID, Tag]) InsertAt(i int, items ...Item[ID, Tag]) error {
	if i < 0 || i > s.Len() {
		return ErrIndexOutOfBounds
	}
	s.items = append(s.items[:i], append(append([]Item[ID, Tag]{}, items...), s.items[i:]...)...)
	return nil
}

// RemoveRange removes items at indices [i, j).
func (s *Section[ID, Tag]) RemoveRange(i, j int) error {
	if i < 0 || j > s.Len() {
		return ErrIndexOutOfBounds
	}
	if j < i {
		return ErrInvalidRange
	}
	s.items = append(s.items[:i], s.items[j:]...)
	return nil
}

// RemoveAll empties the section without touching key or tag.
func (s *Section[ID, Tag]) RemoveAll() {
	s.items = s.items[:0]
}

// RetagItem stamps the item at index i with a new version tag.
func (s *Section[ID, Tag]) RetagItem(i int, tag Tag) error {
	if i < 0 || i >= s.Len() {
		return ErrIndexOutOfBounds
	}
	s.items[i] = s.items[i].Retagged(tag)
	return nil
}

// Items returns an iterator over the section's items in order.
func (s *Section[ID, Tag]) Items() iter.Seq[Item[ID, Tag]] {
	return func(yield func(Item[ID, Tag]) bool) {
		if s == nil {
			return
		}
		for _, it := range s.items {
			if !yield(it) {
				return
			}
		}
	}
}

// IDs returns the ordered identifiers of the section's items.
func (s *Section[ID, Tag]) IDs() []ID {
	if s.Len() == 0 {
		return nil
	}
	ids := make([]ID, len(s.items))
	for i, it := range s.items {
		ids[i] = it.ID()
	}
	return ids
}

// Clone returns a deep copy of the section.
func (s *Section[ID, Tag]) Clone() *Section[ID, Tag] {
	if s == nil {
		return nil
	}
	cloned := &Section[ID, Tag]{key: s.key, tag: s.tag}
	if len(s.items) > 0 {
		cloned.items = append(make([]Item[ID, Tag], 0, len(s.items)), s.items...)
	}
	return cloned
}
