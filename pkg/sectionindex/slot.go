package sectionindex

import "fmt"

// Slot is one row of a section: either a real element or a row reserved
// for something the index does not manage.
type Slot[E any] struct {
	value    E
	reserved bool
}

// Real wraps an element.
func Real[E any](e E) Slot[E] {
	return Slot[E]{value: e}
}

// Reserved returns a placeholder slot.
func Reserved[E any]() Slot[E] {
	return Slot[E]{reserved: true}
}

// Value returns the element and true, or the zero value and false for a
// reserved slot.
func (s Slot[E]) Value() (E, bool) {
	if s.reserved {
		var zero E
		return zero, false
	}
	return s.value, true
}

// IsReserved reports whether the slot is a placeholder.
func (s Slot[E]) IsReserved() bool { return s.reserved }

func (s Slot[E]) String() string {
	if s.reserved {
		return "<reserved>"
	}
	return fmt.Sprint(s.value)
}

// Coordinate addresses a row of a section.
type Coordinate struct {
	Section int
	Row     int
}

// At is shorthand for Coordinate{Section: section, Row: row}.
func At(section, row int) Coordinate {
	return Coordinate{Section: section, Row: row}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d", c.Section, c.Row)
}
