package sectionindex

import (
	"fmt"
	"strings"
)

// Option customises New.
type Option[E any] func(*buildOptions[E])

type buildOptions[E any] struct {
	headerOf func(E) string
	compare  func(a, b string) int
}

// WithHeader derives each element's header with fn instead of the first
// character of its key. Use it when the section title is not the first
// letter of the compare string.
func WithHeader[E any](fn func(E) string) Option[E] {
	return func(opts *buildOptions[E]) {
		opts.headerOf = fn
	}
}

// WithCompare orders the uppercased headers with cmp, which returns a
// negative number when a sorts before b, zero when they are equal and a
// positive number otherwise.
func WithCompare[E any](cmp func(a, b string) int) Option[E] {
	return func(opts *buildOptions[E]) {
		opts.compare = cmp
	}
}

// WithSortOrder orders headers ascending or descending.
func WithSortOrder[E any](o Order) Option[E] {
	return WithCompare[E](o.Compare)
}

// Order is a plain lexicographic header order.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Compare compares a and b in the direction of o.
func (o Order) Compare(a, b string) int {
	if o == Descending {
		return strings.Compare(b, a)
	}
	return strings.Compare(a, b)
}

func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses "asc"/"ascending" or "desc"/"descending".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("sectionindex: unknown sort order %q", s)
	}
}
