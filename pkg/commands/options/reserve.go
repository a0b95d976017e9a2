package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/runner/show"
	"tableflip.dev/sectionlist/pkg/sectionindex"
)

// ReserveOptions lets show preview the layout a host gets after reserving
// coordinates for its own content.
type ReserveOptions struct {
	Sections []string
	Rows     []string
}

func AddReserveArgs(cmd *cobra.Command, o *ReserveOptions) {
	cmd.Flags().StringSliceVar(&o.Sections, "reserve-section", nil,
		"Reserve a section as AT:ROWS, repeatable, applied in order.")
	cmd.Flags().StringSliceVar(&o.Rows, "reserve-row", nil,
		"Reserve a row as SECTION:ROW, repeatable, applied after sections.")
}

// Parse converts the flag values.
func (o *ReserveOptions) Parse() ([]show.Reservation, []sectionindex.Coordinate, error) {
	var sections []show.Reservation
	for _, s := range o.Sections {
		at, rows, err := pair(s)
		if err != nil {
			return nil, nil, fmt.Errorf("--reserve-section: %w", err)
		}
		sections = append(sections, show.Reservation{At: at, Rows: rows})
	}
	var rows []sectionindex.Coordinate
	for _, s := range o.Rows {
		section, row, err := pair(s)
		if err != nil {
			return nil, nil, fmt.Errorf("--reserve-row: %w", err)
		}
		rows = append(rows, sectionindex.At(section, row))
	}
	return sections, rows, nil
}

func pair(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not of the form N:M", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	return x, y, nil
}
