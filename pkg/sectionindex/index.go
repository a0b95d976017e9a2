package sectionindex

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Index is an ordered sequence of sections built from a list of elements.
type Index[E any] struct {
	sections []section[E]
}

type section[E any] struct {
	// header is nil for reserved sections.
	header *string
	slots  []Slot[E]
	// count is the number of rows reported for the section. It equals
	// len(slots) for populated sections.
	count int
}

func populated[E any](header string, elements []E) section[E] {
	slots := make([]Slot[E], len(elements))
	for i, e := range elements {
		slots[i] = Real(e)
	}
	return section[E]{header: &header, slots: slots, count: len(slots)}
}

// Empty returns an index with no sections.
func Empty[E any]() *Index[E] {
	return &Index[E]{}
}

// New partitions list into sections. Each element's header is the
// uppercased first character of keyOf(element), or headerOf(element) when
// WithHeader is given. Headers are matched case-insensitively and stored
// uppercase; sections are ordered ascending unless WithCompare or
// WithSortOrder says otherwise. Elements keep their relative order inside
// a section.
func New[E any](list []E, keyOf func(E) string, opts ...Option[E]) (*Index[E], error) {
	config := &buildOptions[E]{}
	for _, opt := range opts {
		opt(config)
	}
	compare := config.compare
	if compare == nil {
		compare = strings.Compare
	}

	type bucket struct {
		header   string
		elements []E
	}
	buckets := make(map[string]*bucket)
	ordered := make([]*bucket, 0)
	for i, e := range list {
		header, ok := config.header(e, keyOf)
		if !ok {
			return nil, &EmptyKeyError{Position: i}
		}
		key := bucketKey(header)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{header: strings.ToUpper(header)}
			buckets[key] = b
			ordered = append(ordered, b)
		}
		b.elements = append(b.elements, e)
	}

	slices.SortStableFunc(ordered, func(a, b *bucket) int {
		return compare(a.header, b.header)
	})

	idx := &Index[E]{sections: make([]section[E], 0, len(ordered))}
	for _, b := range ordered {
		idx.sections = append(idx.sections, populated(b.header, b.elements))
	}
	return idx, nil
}

// header returns false when the key is empty and there is no header
// function to fall back on.
func (o *buildOptions[E]) header(e E, keyOf func(E) string) (string, bool) {
	if o.headerOf != nil {
		return o.headerOf(e), true
	}
	key := keyOf(e)
	if key == "" {
		return "", false
	}
	first, _, _, _ := uniseg.FirstGraphemeClusterInString(key, -1)
	return strings.ToUpper(first), true
}

// bucketKey is the case-insensitive identity of a header. It decides
// section membership only; ordering is the compare function's job.
func bucketKey(header string) string {
	return strings.ToLower(strings.ToUpper(header))
}

// NumberOfSections returns the number of sections, reserved ones included.
func (ix *Index[E]) NumberOfSections() int {
	return len(ix.sections)
}

// RowsInSection returns the number of rows reported for section.
func (ix *Index[E]) RowsInSection(section int) (int, error) {
	s, err := ix.section(section)
	if err != nil {
		return 0, err
	}
	return s.count, nil
}

// TitleForHeader returns the header of section. ok is false for a section
// reserved with ReserveSection.
func (ix *Index[E]) TitleForHeader(section int) (title string, ok bool, err error) {
	s, err := ix.section(section)
	if err != nil {
		return "", false, err
	}
	if s.header == nil {
		return "", false, nil
	}
	return *s.header, true, nil
}

// ElementAt returns the element at the coordinate. ok is false when the
// coordinate is reserved, either by ReserveRow or because it lies inside a
// section created by ReserveSection.
func (ix *Index[E]) ElementAt(at Coordinate) (e E, ok bool, err error) {
	s, err := ix.section(at.Section)
	if err != nil {
		return e, false, err
	}
	limit := max(len(s.slots), s.count)
	if at.Row < 0 || at.Row >= limit {
		return e, false, rowOutOfRange(at, limit)
	}
	if at.Row >= len(s.slots) {
		return e, false, nil
	}
	e, ok = s.slots[at.Row].Value()
	return e, ok, nil
}

// PrependSection inserts a populated section before all others. Header
// uniqueness across the index is the caller's responsibility.
func (ix *Index[E]) PrependSection(header string, elements []E) {
	ix.sections = slices.Insert(ix.sections, 0, populated(header, elements))
}

// ReserveSection inserts a section without header or elements at position
// at, reporting rowCount rows. Sections at or after at move up by one.
func (ix *Index[E]) ReserveSection(at, rowCount int) error {
	if at < 0 || at > len(ix.sections) {
		return sectionOutOfRange(at, len(ix.sections)+1)
	}
	if rowCount < 0 {
		return negativeRowCount(at, rowCount)
	}
	ix.sections = slices.Insert(ix.sections, at, section[E]{count: rowCount})
	return nil
}

// ReserveRow inserts a reserved slot at the coordinate, moving the rows at
// or after it down by one. The section's row count is left unchanged; a
// caller that shows the extra row accounts for it.
func (ix *Index[E]) ReserveRow(at Coordinate) error {
	s, err := ix.section(at.Section)
	if err != nil {
		return err
	}
	if at.Row < 0 || at.Row > len(s.slots) {
		return rowOutOfRange(at, len(s.slots)+1)
	}
	s.slots = slices.Insert(s.slots, at.Row, Reserved[E]())
	return nil
}

func (ix *Index[E]) section(i int) (*section[E], error) {
	if i < 0 || i >= len(ix.sections) {
		return nil, sectionOutOfRange(i, len(ix.sections))
	}
	return &ix.sections[i], nil
}
