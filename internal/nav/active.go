package nav

// DefaultReferenceLine is the offset from the viewport top, in rows, at
// which a section counts as "in view".
const DefaultReferenceLine = 4

// Section is a chapter section's vertical extent relative to the viewport
// top. Top is inclusive; Bottom is the first row after the section.
type Section struct {
	ID     string
	Top    int
	Bottom int
}

// ActiveSection returns the section straddling line. Every section is
// checked in document order and a later match overwrites an earlier one,
// so when bounds touch or overlap the lowest qualifying section wins.
func ActiveSection(sections []Section, line int) (string, bool) {
	current := ""
	found := false
	for _, s := range sections {
		if s.Top <= line && s.Bottom >= line {
			current = s.ID
			found = true
		}
	}
	return current, found
}
