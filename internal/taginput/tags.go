package taginput

// TagList is an ordered, immutable sequence of committed tags.
// Duplicates are permitted and insertion order is display order.
// Every successful mutation returns a list with a new revision, which is
// what the render cache and the confirmation staleness guard key on.
type TagList struct {
	values   []string
	revision uint64
}

// NewTagList creates a tag list holding the given values in order.
func NewTagList(values ...string) TagList {
	if len(values) == 0 {
		return TagList{}
	}
	return TagList{values: append([]string(nil), values...), revision: 1}
}

// Add appends a tag at the end. It always succeeds.
func (l TagList) Add(text string) TagList {
	next := make([]string, len(l.values), len(l.values)+1)
	copy(next, l.values)
	return TagList{values: append(next, text), revision: l.revision + 1}
}

// Remove drops the tag at index, shifting later tags down by one.
// An out-of-range index leaves the list untouched and reports false.
func (l TagList) Remove(index int) (TagList, bool) {
	if index < 0 || index >= len(l.values) {
		return l, false
	}
	next := make([]string, 0, len(l.values)-1)
	next = append(next, l.values[:index]...)
	next = append(next, l.values[index+1:]...)
	return TagList{values: next, revision: l.revision + 1}, true
}

// Len returns the number of tags.
func (l TagList) Len() int { return len(l.values) }

// At returns the tag at index. It panics on an out-of-range index like a slice.
func (l TagList) At(index int) string { return l.values[index] }

// LastIndex is Len()-1, which is -1 for an empty list.
func (l TagList) LastIndex() int { return len(l.values) - 1 }

// Last returns the tag at the highest index.
func (l TagList) Last() (string, bool) {
	if len(l.values) == 0 {
		return "", false
	}
	return l.values[len(l.values)-1], true
}

// Valid reports whether index addresses an existing tag.
func (l TagList) Valid(index int) bool {
	return index >= 0 && index < len(l.values)
}

// Values returns a copy of the tags in display order.
func (l TagList) Values() []string {
	return append([]string{}, l.values...)
}

// Revision identifies this version of the list.
func (l TagList) Revision() uint64 { return l.revision }
