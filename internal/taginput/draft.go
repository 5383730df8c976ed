package taginput

// Draft holds the uncommitted text. The zero value is the empty draft.
type Draft struct {
	text string
}

// Text returns the current draft text.
func (d Draft) Text() string { return d.text }

// Empty reports whether nothing has been typed.
func (d Draft) Empty() bool { return d.text == "" }

// SetText replaces the draft verbatim. The returned flag reports whether the
// text actually changed, which is when callers notify OnChangeText.
func (d Draft) SetText(text string) (Draft, bool) {
	changed := d.text != text
	d.text = text
	return d, changed
}

// LoadText overwrites the draft without a change notification. Used when a
// removed tag is pulled back into the field for editing.
func (d Draft) LoadText(text string) Draft {
	d.text = text
	return d
}

// Commit moves a non-empty draft onto the end of tags and clears it.
// With an empty draft nothing is committed and the caller should release
// focus instead; committed is false in that case.
func (d Draft) Commit(tags TagList) (Draft, TagList, bool) {
	if d.Empty() {
		return d, tags, false
	}
	return Draft{}, tags.Add(d.text), true
}
