package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/sectionlist/pkg/item"
	"tableflip.dev/sectionlist/pkg/store"
)

// Service provides high-level operations on lists of items.
// It wraps persistence so the CLI and the browser share logic.
type Service struct {
	Persistence store.Persistence
}

var (
	errNoPersistence = errors.New("app: no persistence configured")

	// ErrNotFound is returned when no item matches a reference.
	ErrNotFound = errors.New("app: item not found")

	// ErrAmbiguous is returned when a name matches more than one item.
	ErrAmbiguous = errors.New("app: reference matches several items")
)

// Lists returns the names of all non-empty lists.
func (s *Service) Lists(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Lists(ctx), nil
}

// Items returns the items of list in creation order.
func (s *Service) Items(ctx context.Context, list string) ([]*item.Item, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.List(ctx, list), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Add creates and stores a new item.
func (s *Service) Add(ctx context.Context, list, name string, opts ...AddOption) (*item.Item, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("app: item name required")
	}
	it := item.New(list, name)
	for _, opt := range opts {
		opt(it)
	}
	if err := s.Persistence.Store(it); err != nil {
		return nil, err
	}
	return it, nil
}

// AddOption sets optional fields of an added item.
type AddOption func(*item.Item)

func WithSortName(sortName string) AddOption {
	return func(it *item.Item) { it.SortName = strings.TrimSpace(sortName) }
}

func WithHeader(header string) AddOption {
	return func(it *item.Item) { it.Header = strings.TrimSpace(header) }
}

func WithPinned(pinned bool) AddOption {
	return func(it *item.Item) { it.Pinned = pinned }
}

// Find resolves ref, an item ID or a case-insensitive name, within list.
func (s *Service) Find(ctx context.Context, list, ref string) (*item.Item, error) {
	items, err := s.Items(ctx, list)
	if err != nil {
		return nil, err
	}
	ref = strings.TrimSpace(ref)
	var match *item.Item
	for _, it := range items {
		if it.ID == ref {
			return it, nil
		}
		if strings.EqualFold(it.Name, ref) {
			if match != nil {
				return nil, fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			match = it
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, ref, list)
	}
	return match, nil
}

// Remove deletes the item ref resolves to.
func (s *Service) Remove(ctx context.Context, list, ref string) (*item.Item, error) {
	it, err := s.Find(ctx, list, ref)
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Delete(it); err != nil {
		return nil, err
	}
	return it, nil
}

// SetPinned pins or unpins the item ref resolves to.
func (s *Service) SetPinned(ctx context.Context, list, ref string, pinned bool) (*item.Item, error) {
	it, err := s.Find(ctx, list, ref)
	if err != nil {
		return nil, err
	}
	it.Pinned = pinned
	if err := s.Persistence.Store(it); err != nil {
		return nil, err
	}
	return it, nil
}

// Import adds one item per line of r. Blank lines and lines starting with
// "#" are skipped. A line is `name[<TAB>sort[<TAB>header]]`; a leading "*"
// pins the item.
func (s *Service) Import(ctx context.Context, list string, r io.Reader) ([]*item.Item, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	var added []*item.Item
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return added, err
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(strings.TrimSpace(text), "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		name := strings.TrimSpace(fields[0])
		opts := []AddOption{}
		if strings.HasPrefix(name, "*") {
			name = strings.TrimSpace(strings.TrimPrefix(name, "*"))
			opts = append(opts, WithPinned(true))
		}
		if len(fields) > 1 {
			opts = append(opts, WithSortName(fields[1]))
		}
		if len(fields) > 2 {
			opts = append(opts, WithHeader(fields[2]))
		}
		it, err := s.Add(ctx, list, name, opts...)
		if err != nil {
			return added, fmt.Errorf("app: import line %d: %w", line, err)
		}
		added = append(added, it)
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("app: import: %w", err)
	}
	return added, nil
}
