package nav

// Visibility is the shown/hidden state of the navigation panel.
// The zero value is shown.
type Visibility struct {
	hidden bool
}

// Shown reports whether the panel is visible.
func (v Visibility) Shown() bool {
	return !v.hidden
}

// Toggle flips the panel state.
func (v Visibility) Toggle() Visibility {
	return Visibility{hidden: !v.hidden}
}
