package sectionindex

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is matched by EmptyKeyError.
	ErrEmptyKey = errors.New("sectionindex: empty key")

	// ErrIndexOutOfRange is matched by IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("sectionindex: index out of range")
)

// EmptyKeyError is returned by New when the key of an element is empty and
// no header function was given, so there is no first character to use.
type EmptyKeyError struct {
	// Position of the element in the source list.
	Position int
}

func (e *EmptyKeyError) Error() string {
	return fmt.Sprintf("sectionindex: element %d has an empty key", e.Position)
}

// Is reports whether target is ErrEmptyKey.
func (e *EmptyKeyError) Is(target error) bool {
	return target == ErrEmptyKey
}

// IndexOutOfRangeError is returned when a section or row is outside the
// current bounds. Row is -1 when only a section was addressed.
type IndexOutOfRangeError struct {
	Section int
	Row     int
	// Length is the bound that was exceeded.
	Length int
	// RowCount is negative when ReserveSection was asked for fewer than
	// zero rows.
	RowCount int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.RowCount < 0 {
		return fmt.Sprintf("sectionindex: negative row count %d for section %d", e.RowCount, e.Section)
	}
	if e.Row < 0 {
		return fmt.Sprintf("sectionindex: section %d out of range [0,%d)", e.Section, e.Length)
	}
	return fmt.Sprintf("sectionindex: row %d of section %d out of range [0,%d)", e.Row, e.Section, e.Length)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func sectionOutOfRange(section, length int) error {
	return &IndexOutOfRangeError{Section: section, Row: -1, Length: length}
}

func rowOutOfRange(at Coordinate, length int) error {
	return &IndexOutOfRangeError{Section: at.Section, Row: at.Row, Length: length}
}

func negativeRowCount(section, rowCount int) error {
	return &IndexOutOfRangeError{Section: section, Row: -1, RowCount: rowCount}
}
