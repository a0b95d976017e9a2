package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/sectionlist/pkg/item"
)

// Persistence defines the persistence contract for list items.
type Persistence interface {
	// Lists returns the names of all lists holding at least one item.
	Lists(ctx context.Context) []string
	// List returns the items of a list in creation order.
	List(ctx context.Context, list string) []*item.Item
	Store(it *item.Item) error
	Delete(it *item.Item) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*item.Item, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	it := &item.Item{}
	if err := json.Unmarshal(val, it); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	it.ID = pk.FileName
	if it.List == "" {
		it.List = fromList(pk.Path[0])
	}
	return it, nil
}

func (p *persistence) Lists(ctx context.Context) []string {
	seen := make(map[string]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		if len(pk.Path) == 0 {
			continue
		}
		seen[fromList(pk.Path[0])] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *persistence) List(ctx context.Context, list string) []*item.Item {
	all := make([]*item.Item, 0)
	for key := range p.d.KeysPrefix(toList(list)+"-", ctx.Done()) {
		it, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		all = append(all, it)
	}
	sortItems(all)
	return all
}

func (p *persistence) Store(it *item.Item) error {
	if strings.TrimSpace(it.List) == "" {
		return errors.New("store: list name required")
	}
	if strings.TrimSpace(it.Name) == "" {
		return errors.New("store: item name required")
	}
	key := toKey(it)
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("store: encode item: %w", err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", it.ID, err)
	}
	return nil
}

func (p *persistence) Delete(it *item.Item) error {
	if it.ID == "" {
		return errors.New("store: item id required")
	}
	return p.d.Erase(toKey(it))
}

// sortItems orders by creation time, then ID, so that rebuilding an index
// from the same store always sees the same source order.
func sortItems(items []*item.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		left := items[i]
		right := items[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `list-id`
func toKey(it *item.Item) string {
	return fmt.Sprintf("%s-%s", toList(it.List), it.EnsureID())
}

// List names are hex encoded so that neither "/" nor "-" reach the key.
func toList(s string) string {
	return hex.EncodeToString([]byte(s))
}

func fromList(s string) string {
	name, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromList: %s", err)
	}
	return string(name)
}
