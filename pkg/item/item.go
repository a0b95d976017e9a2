// Package item defines the records the CLI stores and indexes.
package item

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Item is one named entry of a list, a contact for example.
type Item struct {
	ID   string `json:"id,omitempty"`
	List string `json:"list"`
	Name string `json:"name"`
	// SortName, when set, is compared instead of Name (a family name for
	// contacts).
	SortName string `json:"sort,omitempty"`
	// Header, when set, is the section the item is filed under in header
	// mode.
	Header  string    `json:"header,omitempty"`
	Pinned  bool      `json:"pinned,omitempty"`
	Created Timestamp `json:"created"`
}

func New(list, name string) *Item {
	return &Item{
		List:    list,
		Name:    strings.TrimSpace(name),
		Created: Timestamp{Time: time.Now()},
	}
}

// Key returns the string the item is indexed by.
func (i *Item) Key(by KeyField) string {
	if by == KeySort && strings.TrimSpace(i.SortName) != "" {
		return strings.TrimSpace(i.SortName)
	}
	return i.Name
}

// EnsureID assigns a content derived ID when the item has none.
func (i *Item) EnsureID() string {
	if i.ID == "" {
		b, _ := json.Marshal(i)
		sum := md5.Sum(b)
		i.ID = fmt.Sprintf("%x", sum[:8])
	}
	return i.ID
}

func (i *Item) String() string {
	if i.Pinned {
		return "★ " + i.Name
	}
	return i.Name
}

// KeyField selects which property of an Item is the compare string.
type KeyField string

const (
	KeyName KeyField = "name"
	KeySort KeyField = "sort"
)

// ParseKeyField accepts "name" or "sort"; empty means name.
func ParseKeyField(s string) (KeyField, error) {
	switch KeyField(strings.ToLower(strings.TrimSpace(s))) {
	case "", KeyName:
		return KeyName, nil
	case KeySort:
		return KeySort, nil
	default:
		return "", fmt.Errorf("item: unknown key field %q, want name or sort", s)
	}
}
