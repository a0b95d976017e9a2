// Package sectionindex groups a list of elements into alphabetically
// indexed sections and addresses them by (section, row) coordinates, the
// contract a sectioned list view needs to render itself and react to
// selection.
//
// An Index is built once from a full list:
//
//	idx, err := sectionindex.New(names, func(s string) string { return s })
//
// and then queried by the hosting view, in order, for NumberOfSections,
// RowsInSection and TitleForHeader per section, and ElementAt on
// selection. Parts of the view the index does not manage (a fixed block of
// rows, a search field) are accounted for with ReserveSection and
// ReserveRow so that coordinates stay aligned.
//
// An Index is not safe for concurrent use.
package sectionindex
