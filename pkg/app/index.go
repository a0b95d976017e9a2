package app

import (
	"context"
	"strings"

	"tableflip.dev/sectionlist/pkg/item"
	"tableflip.dev/sectionlist/pkg/sectionindex"
)

// Index is a section index over list items.
type Index = sectionindex.Index[*item.Item]

// IndexOptions controls how Build sections a list.
type IndexOptions struct {
	Key   item.KeyField
	Order sectionindex.Order
	// UseHeaders files items under their explicit Header; items without
	// one land in UnheadedTitle.
	UseHeaders bool
	// Pin prepends a section holding the pinned items, titled PinnedHeader.
	Pin          bool
	PinnedHeader string
}

// UnheadedTitle is the section of items without a header in header mode.
const UnheadedTitle = "#"

// Build rebuilds the whole index of list from the store.
func (s *Service) Build(ctx context.Context, list string, o IndexOptions) (*Index, error) {
	items, err := s.Items(ctx, list)
	if err != nil {
		return nil, err
	}
	return NewIndex(items, o)
}

// NewIndex sections items according to o.
func NewIndex(items []*item.Item, o IndexOptions) (*Index, error) {
	opts := []sectionindex.Option[*item.Item]{
		sectionindex.WithSortOrder[*item.Item](o.Order),
	}
	if o.UseHeaders {
		opts = append(opts, sectionindex.WithHeader(func(it *item.Item) string {
			if h := strings.TrimSpace(it.Header); h != "" {
				return h
			}
			return UnheadedTitle
		}))
	}
	key := o.Key
	idx, err := sectionindex.New(items, func(it *item.Item) string { return it.Key(key) }, opts...)
	if err != nil {
		return nil, err
	}

	if o.Pin {
		var pinned []*item.Item
		for _, it := range items {
			if it.Pinned {
				pinned = append(pinned, it)
			}
		}
		if len(pinned) > 0 {
			idx.PrependSection(o.pinnedHeader(), pinned)
		}
	}
	return idx, nil
}

func (o IndexOptions) pinnedHeader() string {
	if o.PinnedHeader == "" {
		return "★"
	}
	return o.PinnedHeader
}

// Count reports the distinct items and the titled sections in rows. Pinned
// items are listed twice and the pinned section is a shortcut, so neither
// is counted again.
func Count(rows []Row, o IndexOptions) (items, sections int) {
	seen := map[*item.Item]bool{}
	ids := map[string]bool{}
	skipPinned := o.Pin
	for _, row := range rows {
		switch {
		case row.Header:
			if skipPinned && row.Title == o.pinnedHeader() {
				skipPinned = false
				continue
			}
			sections++
		case row.Item != nil:
			if row.Item.ID != "" {
				if ids[row.Item.ID] {
					continue
				}
				ids[row.Item.ID] = true
			} else if seen[row.Item] {
				continue
			}
			seen[row.Item] = true
			items++
		}
	}
	return items, sections
}

// Row is one line of a sectioned list as a hosting view sees it.
type Row struct {
	At sectionindex.Coordinate
	// Header marks a section title line; At.Row is -1.
	Header bool
	Title  string
	// Item is nil for header lines and reserved coordinates.
	Item *item.Item
}

// Reserved reports whether the row is a coordinate held for something
// other than an item.
func (r Row) Reserved() bool {
	return !r.Header && r.Item == nil
}

// Rows walks idx the way a list view renders it: per section the title
// (when there is one), then the reported number of rows.
func Rows(idx *Index) ([]Row, error) {
	return RowsWith(idx, nil)
}

// RowsWith is Rows for a view that shows extra[section] more rows than the
// index reports, the rows it reserved with ReserveRow.
func RowsWith(idx *Index, extra map[int]int) ([]Row, error) {
	var out []Row
	for s := 0; s < idx.NumberOfSections(); s++ {
		title, titled, err := idx.TitleForHeader(s)
		if err != nil {
			return nil, err
		}
		n, err := idx.RowsInSection(s)
		if err != nil {
			return nil, err
		}
		n += extra[s]
		if titled {
			out = append(out, Row{At: sectionindex.At(s, -1), Header: true, Title: title})
		}
		for r := 0; r < n; r++ {
			at := sectionindex.At(s, r)
			it, ok, err := idx.ElementAt(at)
			if err != nil {
				return nil, err
			}
			row := Row{At: at, Title: title}
			if ok {
				row.Item = it
			}
			out = append(out, row)
		}
	}
	return out, nil
}
