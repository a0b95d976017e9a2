package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/item"
	"tableflip.dev/sectionlist/pkg/sectionindex"
	"tableflip.dev/sectionlist/pkg/store"
)

// IndexOptions captures the flags that shape how a list is sectioned.
type IndexOptions struct {
	Key          string
	Order        OrderValue
	Headers      bool
	Pin          bool
	PinnedHeader string

	cmd *cobra.Command
}

// AddIndexArgs wires the sectioning flags on the provided command.
func AddIndexArgs(cmd *cobra.Command, o *IndexOptions) {
	o.cmd = cmd
	cmd.Flags().StringVar(&o.Key, "by", string(item.KeyName),
		"Section items by their 'name' or 'sort' key.")
	cmd.Flags().Var(&o.Order, "order",
		"Section order, 'asc' or 'desc'.")
	cmd.Flags().BoolVar(&o.Headers, "headers", false,
		"Use each item's explicit header instead of its first letter.")
	cmd.Flags().BoolVar(&o.Pin, "pin", true,
		"Show pinned items in their own first section.")
	cmd.Flags().StringVar(&o.PinnedHeader, "pinned-header", "",
		"Title of the pinned section.")
}

// Resolve merges the flags over cfg. Flags the user did not set take the
// configured value.
func (o *IndexOptions) Resolve(cfg store.Config) (app.IndexOptions, error) {
	key, order, pinned := cfg.KeyField(), cfg.Order(), cfg.PinnedHeader()
	if o.changed("by") {
		key = o.Key
	}
	if o.changed("order") {
		order = o.Order.String()
	}
	if o.PinnedHeader != "" {
		pinned = o.PinnedHeader
	}

	by, err := item.ParseKeyField(key)
	if err != nil {
		return app.IndexOptions{}, err
	}
	ord, err := sectionindex.ParseOrder(order)
	if err != nil {
		return app.IndexOptions{}, err
	}
	return app.IndexOptions{
		Key:          by,
		Order:        ord,
		UseHeaders:   o.Headers,
		Pin:          o.Pin,
		PinnedHeader: pinned,
	}, nil
}

func (o *IndexOptions) changed(name string) bool {
	return o.cmd != nil && o.cmd.Flags().Changed(name)
}

// OrderValue is a pflag.Value for sectionindex.Order.
type OrderValue struct {
	Order sectionindex.Order
}

func (v *OrderValue) String() string {
	return v.Order.String()
}

func (v *OrderValue) Set(s string) error {
	o, err := sectionindex.ParseOrder(s)
	if err != nil {
		return err
	}
	v.Order = o
	return nil
}

func (v *OrderValue) Type() string {
	return "order"
}
